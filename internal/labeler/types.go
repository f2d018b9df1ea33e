package labeler

import (
	"context"
	"fmt"
)

// IssueSnapshot は取得時点のIssueの状態
type IssueSnapshot struct {
	Labels    []string
	Assignees int
}

// IssueService はIssueの取得とラベル更新を行うクライアント
type IssueService interface {
	GetIssue(ctx context.Context, owner, repo string, number int) (*IssueSnapshot, error)
	// ReplaceLabels はIssueのラベルを labels と完全に一致するよう置き換える
	ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) error
}

// Status は実行結果の種類
type Status int

const (
	// StatusUpdated はラベルを更新した
	StatusUpdated Status = iota
	// StatusNoRepository はイベントにowner/repoがなく何もしなかった
	StatusNoRepository
	// StatusNoIssue はIssue番号が特定できず何もしなかった
	StatusNoIssue
	// StatusSkipped はガード条件により更新しなかった
	StatusSkipped
)

// String はStatusの文字列表現を返す
func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusNoRepository:
		return "no_repository"
	case StatusNoIssue:
		return "no_issue"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result は1回の実行結果
type Result struct {
	Status      Status
	Message     string
	IssueNumber int
	// 書き込んだラベル。StatusUpdated のときのみ設定される
	Labels []string
}

// Updated はラベルを更新したかどうかを返す
func (r *Result) Updated() bool {
	return r.Status == StatusUpdated
}

// InvalidIssueNumberError はIssue番号が数値として解釈できない
type InvalidIssueNumberError struct {
	Value  string
	Source string
}

func (e *InvalidIssueNumberError) Error() string {
	return fmt.Sprintf("invalid issue number %q from %s", e.Value, e.Source)
}
