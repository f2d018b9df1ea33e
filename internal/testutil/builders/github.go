package builders

import (
	"github.com/douhashi/issue-labeler/internal/event"
	"github.com/douhashi/issue-labeler/internal/labeler"
)

// PayloadBuilder builds event.Payload instances for testing
type PayloadBuilder struct {
	payload *event.Payload
}

// NewPayloadBuilder creates a new PayloadBuilder with an empty payload
func NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{payload: &event.Payload{}}
}

// WithRepository sets repository.owner.login and repository.name
func (b *PayloadBuilder) WithRepository(owner, repo string) *PayloadBuilder {
	b.payload.Repository = &event.Repository{Name: repo}
	b.payload.Repository.Owner.Login = owner
	return b
}

// WithIssue sets issue.number
func (b *PayloadBuilder) WithIssue(number int) *PayloadBuilder {
	b.payload.Issue = &event.Issue{Number: number}
	return b
}

// WithPullRequest sets pull_request.number
func (b *PayloadBuilder) WithPullRequest(number int) *PayloadBuilder {
	b.payload.PullRequest = &event.PullRequest{Number: number}
	return b
}

// WithProjectCard sets project_card.content_url
func (b *PayloadBuilder) WithProjectCard(contentURL string) *PayloadBuilder {
	b.payload.ProjectCard = &event.ProjectCard{ContentURL: contentURL}
	return b
}

// Build returns the payload
func (b *PayloadBuilder) Build() *event.Payload {
	return b.payload
}

// SnapshotBuilder builds labeler.IssueSnapshot instances for testing
type SnapshotBuilder struct {
	snapshot labeler.IssueSnapshot
}

// NewSnapshotBuilder creates a new SnapshotBuilder for an unlabeled, unassigned issue
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snapshot: labeler.IssueSnapshot{Labels: []string{}},
	}
}

// WithLabels sets the current labels
func (b *SnapshotBuilder) WithLabels(labels ...string) *SnapshotBuilder {
	b.snapshot.Labels = append([]string{}, labels...)
	return b
}

// WithAssignees sets the number of assignees
func (b *SnapshotBuilder) WithAssignees(n int) *SnapshotBuilder {
	b.snapshot.Assignees = n
	return b
}

// Build returns a copy of the snapshot
func (b *SnapshotBuilder) Build() *labeler.IssueSnapshot {
	s := b.snapshot
	s.Labels = append([]string{}, b.snapshot.Labels...)
	return &s
}
