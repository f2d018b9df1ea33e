package config

import (
	"fmt"
	"strings"
)

// 入力名（GitHub Actionsの action.yml と同じ名前）
const (
	KeyAddLabels        = "add-labels"
	KeyRemoveLabels     = "remove-labels"
	KeyIssueNumber      = "issue-number"
	KeyRepoToken        = "repo-token"
	KeyIgnoreIfAssigned = "ignore-if-assigned"
	KeyIgnoreIfLabeled  = "ignore-if-labeled"
	KeyEnterpriseURL    = "enterprise-url"
)

// Keys は全ての入力名を返す
func Keys() []string {
	return []string{
		KeyAddLabels,
		KeyRemoveLabels,
		KeyIssueNumber,
		KeyRepoToken,
		KeyIgnoreIfAssigned,
		KeyIgnoreIfLabeled,
		KeyEnterpriseURL,
	}
}

// Inputs は文字列のままの入力値
type Inputs struct {
	AddLabels        string
	RemoveLabels     string
	IssueNumber      string
	RepoToken        string
	IgnoreIfAssigned string
	IgnoreIfLabeled  string
	EnterpriseURL    string
}

// Config は1回の実行で使う設定。生成後は変更しない
type Config struct {
	Token         string
	EnterpriseURL string
	AddLabels     []string
	RemoveLabels  []string

	// 入力が空文字列でなければ有効（"false" でも有効になる）
	IgnoreIfAssigned bool
	IgnoreIfLabeled  bool

	// 明示的に指定されたIssue番号。空の場合はイベントから解決する
	IssueNumber string
}

// Config は入力値から Config を組み立てる
func (in Inputs) Config() *Config {
	return &Config{
		Token:            strings.TrimSpace(in.RepoToken),
		EnterpriseURL:    strings.TrimRight(strings.TrimSpace(in.EnterpriseURL), "/"),
		AddLabels:        ParseLabelList(in.AddLabels),
		RemoveLabels:     ParseLabelList(in.RemoveLabels),
		IgnoreIfAssigned: in.IgnoreIfAssigned != "",
		IgnoreIfLabeled:  in.IgnoreIfLabeled != "",
		IssueNumber:      strings.TrimSpace(in.IssueNumber),
	}
}

// ValidationError は設定値の検証エラー
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Token == "" {
		return &ValidationError{Field: KeyRepoToken, Message: "GitHub token is required"}
	}

	if c.EnterpriseURL != "" &&
		!strings.HasPrefix(c.EnterpriseURL, "https://") &&
		!strings.HasPrefix(c.EnterpriseURL, "http://") {
		return &ValidationError{Field: KeyEnterpriseURL, Message: "must start with http:// or https://"}
	}

	return nil
}
