// Package event はワークフローを起動したイベントのペイロードを扱う
package event

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// Payload はイベントペイロードのうちラベル操作に必要な部分
type Payload struct {
	Repository  *Repository  `json:"repository,omitempty"`
	Issue       *Issue       `json:"issue,omitempty"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	ProjectCard *ProjectCard `json:"project_card,omitempty"`
}

// Repository はイベント対象のリポジトリ
type Repository struct {
	Name  string `json:"name"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// Issue はissuesイベントのIssue
type Issue struct {
	Number int `json:"number"`
}

// PullRequest はpull_requestイベントのPull Request
type PullRequest struct {
	Number int `json:"number"`
}

// ProjectCard はproject_cardイベントのカード
// content_url は https://api.github.com/repos/owner/repo/issues/42 の形式
type ProjectCard struct {
	ContentURL string `json:"content_url"`
}

// FromAction はActionsのコンテキスト（GITHUB_EVENT_PATH）からペイロードを読み込む
// イベントファイルが存在しない場合は空のペイロードを返す
func FromAction(a *githubactions.Action) (*Payload, error) {
	ghctx, err := a.Context()
	if err != nil {
		return nil, fmt.Errorf("failed to load actions context: %w", err)
	}
	if ghctx.Event == nil {
		return &Payload{}, nil
	}

	raw, err := json.Marshal(ghctx.Event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return Parse(raw)
}

// Load はイベントのJSONファイルを読み込む
func Load(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Payload{}, nil
		}
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return Parse(data)
}

// Parse はイベントのJSONをパースする
func Parse(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return &p, nil
}

// Owner はリポジトリのオーナー名を返す
func (p *Payload) Owner() string {
	if p == nil || p.Repository == nil {
		return ""
	}
	return p.Repository.Owner.Login
}

// Repo はリポジトリ名を返す
func (p *Payload) Repo() string {
	if p == nil || p.Repository == nil {
		return ""
	}
	return p.Repository.Name
}

// SetRepositoryIfMissing はペイロードにない場合のみowner/repoを補う
func (p *Payload) SetRepositoryIfMissing(owner, repo string) {
	if p.Repository == nil {
		p.Repository = &Repository{}
	}
	if p.Repository.Owner.Login == "" {
		p.Repository.Owner.Login = owner
	}
	if p.Repository.Name == "" {
		p.Repository.Name = repo
	}
}

// IssueNumber はissueイベントのIssue番号を返す。ない場合は空文字列
func (p *Payload) IssueNumber() string {
	if p == nil || p.Issue == nil || p.Issue.Number == 0 {
		return ""
	}
	return fmt.Sprint(p.Issue.Number)
}

// PullRequestNumber はpull_requestイベントの番号を返す。ない場合は空文字列
func (p *Payload) PullRequestNumber() string {
	if p == nil || p.PullRequest == nil || p.PullRequest.Number == 0 {
		return ""
	}
	return fmt.Sprint(p.PullRequest.Number)
}

// ProjectCardIssueNumber はカードのcontent_urlの最後のセグメントを返す
func (p *Payload) ProjectCardIssueNumber() string {
	if p == nil || p.ProjectCard == nil || p.ProjectCard.ContentURL == "" {
		return ""
	}
	parts := strings.Split(p.ProjectCard.ContentURL, "/")
	return parts[len(parts)-1]
}
