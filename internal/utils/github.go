package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// RepoInfo はリポジトリのowner/repoを保持する構造体
type RepoInfo struct {
	Owner string
	Repo  string
}

var (
	shorthandPattern = regexp.MustCompile(`^([^/:@\s]+)/([^/\s]+?)(?:\.git)?$`)
	httpsPattern     = regexp.MustCompile(`^https?://[^/]+/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	sshPattern       = regexp.MustCompile(`^(?:ssh://)?git@[^:/]+[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseRepository はリポジトリの指定からowner/repo情報を抽出する
// 以下の形式に対応（GitHub Enterprise Serverのホストも可）:
// - owner/repo
// - https://github.com/owner/repo.git
// - https://github.com/owner/repo
// - git@github.com:owner/repo.git
// - ssh://git@github.com/owner/repo
func ParseRepository(s string) (*RepoInfo, error) {
	s = strings.TrimSpace(s)

	for _, pattern := range []*regexp.Regexp{httpsPattern, sshPattern, shorthandPattern} {
		if matches := pattern.FindStringSubmatch(s); len(matches) == 3 {
			return &RepoInfo{
				Owner: matches[1],
				Repo:  matches[2],
			}, nil
		}
	}

	return nil, fmt.Errorf("invalid repository format: %s", s)
}
