package labeler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/douhashi/issue-labeler/internal/labeler"
	"github.com/douhashi/issue-labeler/internal/testutil/builders"
	"github.com/douhashi/issue-labeler/internal/testutil/helpers"
	"github.com/douhashi/issue-labeler/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestResolveIssueNumber(t *testing.T) {
	const cardURL = "https://api.github.com/repos/o/r/issues/4"

	tests := []struct {
		name       string
		configured string
		payload    *builders.PayloadBuilder
		want       string
		wantSource string
	}{
		{
			name:       "設定値が最優先",
			configured: "1",
			payload:    builders.NewPayloadBuilder().WithIssue(2).WithPullRequest(3).WithProjectCard(cardURL),
			want:       "1",
			wantSource: labeler.SourceConfig,
		},
		{
			name:       "設定値がなければissue",
			payload:    builders.NewPayloadBuilder().WithIssue(2).WithPullRequest(3).WithProjectCard(cardURL),
			want:       "2",
			wantSource: labeler.SourceIssue,
		},
		{
			name:       "issueがなければpull_request",
			payload:    builders.NewPayloadBuilder().WithPullRequest(3).WithProjectCard(cardURL),
			want:       "3",
			wantSource: labeler.SourcePullRequest,
		},
		{
			name:       "最後にproject_cardのcontent_url",
			payload:    builders.NewPayloadBuilder().WithProjectCard(cardURL),
			want:       "4",
			wantSource: labeler.SourceProjectCard,
		},
		{
			name:    "どれもなければ空",
			payload: builders.NewPayloadBuilder(),
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := builders.NewConfigBuilder().WithIssueNumber(tt.configured).Build()

			got, source := labeler.ResolveIssueNumber(cfg, tt.payload.Build())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ラベルを追加して結果メッセージを返す", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).
			Return(builders.NewSnapshotBuilder().WithLabels("a").Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 5, []string{"a", "b"}).Return(nil)

		cfg := builders.NewConfigBuilder().WithAddLabels("a, b").WithRemoveLabels("").Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, labeler.StatusUpdated, result.Status)
		assert.True(t, result.Updated())
		assert.Equal(t, "Updated labels in 5. Added: a,b. Removed: .", result.Message)
		assert.Equal(t, []string{"a", "b"}, result.Labels)
		assert.Equal(t, 5, result.IssueNumber)
		client.AssertExpectations(t)
	})

	t.Run("正常系: 削除のみ", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 9).
			Return(builders.NewSnapshotBuilder().WithLabels("bug", "urgent").Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 9, []string{"bug"}).Return(nil)

		cfg := builders.NewConfigBuilder().WithRemoveLabels("urgent").Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithPullRequest(9).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, "Updated labels in 9. Added: . Removed: urgent.", result.Message)
		client.AssertExpectations(t)
	})

	t.Run("正常系: 変化がなくても全ラベルを書き込む", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 3).
			Return(builders.NewSnapshotBuilder().WithLabels("a").Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 3, []string{"a"}).Return(nil)

		cfg := builders.NewConfigBuilder().WithAddLabels("a").Build()
		payload := builders.NewPayloadBuilder().
			WithRepository("o", "r").
			WithProjectCard("https://api.github.com/repos/o/r/issues/3").
			Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, "Updated labels in 3. Added: a. Removed: .", result.Message)
		client.AssertExpectations(t)
	})

	t.Run("正常系: owner/repoがなければ空の結果でAPIを呼ばない", func(t *testing.T) {
		for _, payload := range []*builders.PayloadBuilder{
			builders.NewPayloadBuilder().WithIssue(1),
			builders.NewPayloadBuilder().WithRepository("", "r").WithIssue(1),
			builders.NewPayloadBuilder().WithRepository("o", "").WithIssue(1),
		} {
			client := mocks.NewMockIssueService()
			log, logs := helpers.NewObservableLogger(zapcore.DebugLevel)

			result, err := labeler.New(client, log).Run(ctx, builders.NewConfigBuilder().Build(), payload.Build())

			require.NoError(t, err)
			assert.Equal(t, labeler.StatusNoRepository, result.Status)
			assert.Empty(t, result.Message)
			assert.Contains(t, helpers.Messages(logs), "repository_not_identified")
			client.AssertNotCalled(t, "GetIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("正常系: Issue番号がなければAPIを呼ばない", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").Build()

		result, err := labeler.New(client, nil).Run(ctx, builders.NewConfigBuilder().Build(), payload)

		require.NoError(t, err)
		assert.Equal(t, labeler.StatusNoIssue, result.Status)
		assert.Equal(t, labeler.MessageNoIssueNumber, result.Message)
		client.AssertNotCalled(t, "GetIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: アサイン済みならスキップして更新しない", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).
			Return(builders.NewSnapshotBuilder().WithAssignees(2).Build(), nil)

		cfg := builders.NewConfigBuilder().WithAddLabels("triage").WithIgnoreIfAssigned().Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, labeler.StatusSkipped, result.Status)
		assert.Equal(t, labeler.MessageAssigned, result.Message)
		client.AssertNotCalled(t, "ReplaceLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: アサインなしならignore-if-assignedでも更新する", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).
			Return(builders.NewSnapshotBuilder().Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 5, []string{"triage"}).Return(nil)

		cfg := builders.NewConfigBuilder().WithAddLabels("triage").WithIgnoreIfAssigned().Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, labeler.StatusUpdated, result.Status)
		client.AssertExpectations(t)
	})

	t.Run("正常系: ラベル付きならスキップして更新しない", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).
			Return(builders.NewSnapshotBuilder().WithLabels("bug").Build(), nil)

		cfg := builders.NewConfigBuilder().WithAddLabels("triage").WithIgnoreIfLabeled().Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, labeler.StatusSkipped, result.Status)
		assert.Equal(t, labeler.MessageLabeled, result.Message)
		client.AssertNotCalled(t, "ReplaceLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: 設定のIssue番号を使う", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 77).
			Return(builders.NewSnapshotBuilder().Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 77, []string{"x"}).Return(nil)

		cfg := builders.NewConfigBuilder().WithIssueNumber("77").WithAddLabels("x").Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		require.NoError(t, err)
		assert.Equal(t, 77, result.IssueNumber)
		client.AssertExpectations(t)
	})

	t.Run("異常系: 数値でないIssue番号", func(t *testing.T) {
		client := mocks.NewMockIssueService()
		cfg := builders.NewConfigBuilder().Build()
		payload := builders.NewPayloadBuilder().
			WithRepository("o", "r").
			WithProjectCard("https://api.github.com/repos/o/r/pulls/abc").
			Build()

		_, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		var numErr *labeler.InvalidIssueNumberError
		require.True(t, errors.As(err, &numErr))
		assert.Equal(t, "abc", numErr.Value)
		assert.Equal(t, labeler.SourceProjectCard, numErr.Source)
		client.AssertNotCalled(t, "GetIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: Issueの取得に失敗", func(t *testing.T) {
		apiErr := errors.New("404 Not Found")
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).Return(nil, apiErr)

		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		_, err := labeler.New(client, nil).Run(ctx, builders.NewConfigBuilder().Build(), payload)

		require.Error(t, err)
		assert.ErrorIs(t, err, apiErr)
		assert.Contains(t, err.Error(), "get issue")
		client.AssertNotCalled(t, "ReplaceLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 更新に失敗", func(t *testing.T) {
		apiErr := errors.New("403 Forbidden")
		client := mocks.NewMockIssueService()
		client.On("GetIssue", mock.Anything, "o", "r", 5).
			Return(builders.NewSnapshotBuilder().Build(), nil)
		client.On("ReplaceLabels", mock.Anything, "o", "r", 5, []string{"a"}).Return(apiErr)

		cfg := builders.NewConfigBuilder().WithAddLabels("a").Build()
		payload := builders.NewPayloadBuilder().WithRepository("o", "r").WithIssue(5).Build()

		result, err := labeler.New(client, nil).Run(ctx, cfg, payload)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apiErr)
		assert.Contains(t, err.Error(), "update issue")
	})
}

func TestUpdatedMessage(t *testing.T) {
	assert.Equal(t,
		"Updated labels in 12. Added: bug,help wanted. Removed: wip.",
		labeler.UpdatedMessage("12", []string{"bug", "help wanted"}, []string{"wip"}),
	)
}
