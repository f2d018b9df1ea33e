// Package mocks provides testify/mock implementations of the interfaces used by issue-labeler.
//
// # Available Mocks
//
//   - MockIssueService: Mock for labeler.IssueService
//
// Always assert with AssertExpectations, and use AssertNotCalled to check that a guard
// prevented a label update.
package mocks
