package paths

import (
	"os"
	"path/filepath"
)

// AppName は設定ディレクトリ名と設定ファイル名に使う
const AppName = "issue-labeler"

// configExtensions は探索する設定ファイルの拡張子
var configExtensions = []string{".yml", ".yaml"}

// PathManager はissue-labelerの設定ファイルのパスを管理するインターフェース
type PathManager interface {
	ConfigDir() string
	ConfigCandidates() []string
	FindConfigFile() string
}

type pathManager struct {
	home          string
	xdgConfigHome string
}

// NewPathManager は新しいPathManagerを作成します
// homeが空の場合はHOMEを使用します
func NewPathManager(home, xdgConfigHome string) PathManager {
	if home == "" {
		home = os.Getenv("HOME")
	}
	return &pathManager{
		home:          home,
		xdgConfigHome: xdgConfigHome,
	}
}

// NewFromEnv はHOMEとXDG_CONFIG_HOMEからPathManagerを作成します
func NewFromEnv() PathManager {
	return NewPathManager(os.Getenv("HOME"), os.Getenv("XDG_CONFIG_HOME"))
}

// ConfigDir は設定ディレクトリのパスを返します
// XDG_CONFIG_HOMEが設定されている場合はそちらを優先します
func (p *pathManager) ConfigDir() string {
	if p.xdgConfigHome != "" {
		return filepath.Join(p.xdgConfigHome, AppName)
	}
	return filepath.Join(p.home, ".config", AppName)
}

// ConfigCandidates は探索順に設定ファイルの候補を返します
func (p *pathManager) ConfigCandidates() []string {
	dirs := []string{p.ConfigDir()}
	if p.home != "" {
		dirs = append(dirs, p.home)
	}

	var candidates []string
	for _, dir := range dirs {
		for _, ext := range configExtensions {
			candidates = append(candidates, filepath.Join(dir, AppName+ext))
		}
	}
	return candidates
}

// FindConfigFile は最初に見つかった設定ファイルのパスを返します
// 見つからない場合は空文字を返します
func (p *pathManager) FindConfigFile() string {
	for _, candidate := range p.ConfigCandidates() {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
