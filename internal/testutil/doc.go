// Package testutil provides common test utilities, mocks, and builders for testing issue-labeler components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: testify/mock implementations of the interfaces the labeler depends on
//   - builders: fluent builders for configs, event payloads and issue snapshots
//   - helpers: zap observer based logger for asserting on log output
//
// # Example
//
//	mockIssues := mocks.NewMockIssueService()
//	mockIssues.On("GetIssue", mock.Anything, "owner", "repo", 5).
//	    Return(builders.NewSnapshotBuilder().WithLabels("bug").Build(), nil)
//
//	payload := builders.NewPayloadBuilder().
//	    WithRepository("owner", "repo").
//	    WithIssue(5).
//	    Build()
package testutil
