// Package labeler はイベントと設定に基づいてIssueのラベルを追加・削除する
package labeler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/douhashi/issue-labeler/internal/config"
	"github.com/douhashi/issue-labeler/internal/event"
	"github.com/douhashi/issue-labeler/internal/logger"
)

// 何もしなかった場合のメッセージ
const (
	MessageNoIssueNumber = "No action being taken. Ignoring because issueNumber was not identified"
	MessageAssigned      = "No action being taken. Ignoring because one or more assignees have been added to the issue"
	MessageLabeled       = "No action being taken. Ignoring because one or labels have been added to the issue"
)

// Issue番号の取得元
const (
	SourceConfig      = "issue-number"
	SourceIssue       = "issue"
	SourcePullRequest = "pull_request"
	SourceProjectCard = "project_card"
)

// Labeler はIssueのラベルを調整する
type Labeler struct {
	client IssueService
	logger logger.Logger
}

// New は新しいLabelerを作成する
func New(client IssueService, log logger.Logger) *Labeler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Labeler{
		client: client,
		logger: log,
	}
}

// ResolveIssueNumber は対象のIssue番号とその取得元を返す
// 設定値 > issue > pull_request > project_cardのcontent_url の順で最初に空でないものを使う
func ResolveIssueNumber(cfg *config.Config, payload *event.Payload) (string, string) {
	if cfg.IssueNumber != "" {
		return cfg.IssueNumber, SourceConfig
	}
	if n := payload.IssueNumber(); n != "" {
		return n, SourceIssue
	}
	if n := payload.PullRequestNumber(); n != "" {
		return n, SourcePullRequest
	}
	if n := payload.ProjectCardIssueNumber(); n != "" {
		return n, SourceProjectCard
	}
	return "", ""
}

// Run はラベルを調整する
//
// 何もしない場合（owner/repoなし、Issue番号なし、ガード条件）はエラーではなく Result で返す
// API呼び出しの失敗はエラーとして返し、Issueは実行前の状態のまま残る
func (l *Labeler) Run(ctx context.Context, cfg *config.Config, payload *event.Payload) (*Result, error) {
	owner, repo := payload.Owner(), payload.Repo()
	if owner == "" || repo == "" {
		// TODO: owner/repoがないのは設定ミスの可能性が高いので、エラーにするオプションを検討する
		l.logger.Warn("repository_not_identified", "owner", owner, "repo", repo)
		return &Result{Status: StatusNoRepository}, nil
	}

	rawNumber, source := ResolveIssueNumber(cfg, payload)
	if rawNumber == "" {
		return &Result{Status: StatusNoIssue, Message: MessageNoIssueNumber}, nil
	}

	number, err := strconv.Atoi(rawNumber)
	if err != nil || number <= 0 {
		return nil, &InvalidIssueNumberError{Value: rawNumber, Source: source}
	}

	log := l.logger.WithFields("owner", owner, "repo", repo, "issue_number", number)
	log.Debug("issue_number_resolved", "source", source)

	issue, err := l.client.GetIssue(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}
	log.Debug("issue_fetched", "labels", issue.Labels, "assignees", issue.Assignees)

	if cfg.IgnoreIfAssigned && issue.Assignees > 0 {
		log.Info("skipped_assigned", "assignees", issue.Assignees)
		return &Result{Status: StatusSkipped, Message: MessageAssigned, IssueNumber: number}, nil
	}

	if cfg.IgnoreIfLabeled && len(issue.Labels) > 0 {
		log.Info("skipped_labeled", "labels", issue.Labels)
		return &Result{Status: StatusSkipped, Message: MessageLabeled, IssueNumber: number}, nil
	}

	labels := ApplyLabels(issue.Labels, cfg.AddLabels, cfg.RemoveLabels)

	if err := l.client.ReplaceLabels(ctx, owner, repo, number, labels); err != nil {
		return nil, fmt.Errorf("update issue: %w", err)
	}
	log.Info("labels_updated", "before", issue.Labels, "after", labels)

	return &Result{
		Status:      StatusUpdated,
		Message:     UpdatedMessage(rawNumber, cfg.AddLabels, cfg.RemoveLabels),
		IssueNumber: number,
		Labels:      labels,
	}, nil
}

// UpdatedMessage は更新完了のメッセージを返す。実際に変化があったかに関わらず設定値を報告する
func UpdatedMessage(issueNumber string, add, remove []string) string {
	return fmt.Sprintf("Updated labels in %s. Added: %s. Removed: %s.",
		issueNumber, strings.Join(add, ","), strings.Join(remove, ","))
}
