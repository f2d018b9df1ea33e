package mocks

import (
	"context"

	"github.com/douhashi/issue-labeler/internal/labeler"
	"github.com/stretchr/testify/mock"
)

// MockIssueService is a mock implementation of labeler.IssueService
type MockIssueService struct {
	mock.Mock
}

// NewMockIssueService creates a new instance of MockIssueService
func NewMockIssueService() *MockIssueService {
	return &MockIssueService{}
}

// GetIssue mocks the GetIssue method
func (m *MockIssueService) GetIssue(ctx context.Context, owner, repo string, number int) (*labeler.IssueSnapshot, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labeler.IssueSnapshot), args.Error(1)
}

// ReplaceLabels mocks the ReplaceLabels method
func (m *MockIssueService) ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	args := m.Called(ctx, owner, repo, number, labels)
	return args.Error(0)
}

// Ensure MockIssueService implements labeler.IssueService interface
var _ labeler.IssueService = (*MockIssueService)(nil)
