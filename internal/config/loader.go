package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix は環境変数のプレフィックス（LABELER_ADD_LABELS など）
const EnvPrefix = "LABELER"

// InputGetter はGitHub Actionsの入力値（INPUT_<NAME>）を取得する
type InputGetter interface {
	GetInput(name string) string
}

// Loader は各ソースから入力値を集める
//
// 優先順位: フラグ > 環境変数 > 設定ファイル > Actionsの入力 > デフォルト（空）
type Loader struct {
	v *viper.Viper
}

// NewLoader は新しいLoaderを作成する
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// GITHUB_TOKENもサポート
	_ = v.BindEnv(KeyRepoToken, EnvPrefix+"_REPO_TOKEN", "GITHUB_TOKEN")

	for _, key := range Keys() {
		v.SetDefault(key, "")
	}

	return &Loader{v: v}
}

// WithActionInputs はActionsの入力値をデフォルト値として登録する
func (l *Loader) WithActionInputs(in InputGetter) *Loader {
	if in == nil {
		return l
	}
	for _, key := range Keys() {
		if value := in.GetInput(key); value != "" {
			l.v.SetDefault(key, value)
		}
	}
	return l
}

// BindFlags は入力名と同じ名前のフラグをバインドする。存在しないフラグは無視する
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys() {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// ReadFile は設定ファイルを読み込む。パスが空の場合は何もしない
func (l *Loader) ReadFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to access config file: %w", err)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Inputs は集めた入力値を返す
func (l *Loader) Inputs() Inputs {
	return Inputs{
		AddLabels:        l.stringValue(KeyAddLabels),
		RemoveLabels:     l.stringValue(KeyRemoveLabels),
		IssueNumber:      l.stringValue(KeyIssueNumber),
		RepoToken:        l.stringValue(KeyRepoToken),
		IgnoreIfAssigned: l.stringValue(KeyIgnoreIfAssigned),
		IgnoreIfLabeled:  l.stringValue(KeyIgnoreIfLabeled),
		EnterpriseURL:    l.stringValue(KeyEnterpriseURL),
	}
}

// Load は入力値を集めて Config を返す
func (l *Loader) Load() *Config {
	return l.Inputs().Config()
}

// stringValue は文字列として値を取得する
// 設定ファイルではラベルをYAMLのリストでも書けるため、リストはカンマで連結する
func (l *Loader) stringValue(key string) string {
	switch value := l.v.Get(key).(type) {
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(value, ",")
	case bool:
		// YAMLの ignore-if-assigned: false は無効として扱う
		if !value {
			return ""
		}
		return "true"
	default:
		return l.v.GetString(key)
	}
}
