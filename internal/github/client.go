package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/douhashi/issue-labeler/internal/labeler"
	"github.com/douhashi/issue-labeler/internal/logger"
	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"
)

// Client はGitHub APIクライアントのラッパー
type Client struct {
	github *github.Client
	logger logger.Logger
}

type clientOptions struct {
	enterpriseURL string
	httpClient    *http.Client
	logger        logger.Logger
}

// ClientOption はクライアントの設定オプション
type ClientOption func(*clientOptions)

// WithEnterpriseURL はGitHub Enterprise Serverのベース URL を設定する
// APIは <url>/api/v3/ にルーティングされる
func WithEnterpriseURL(url string) ClientOption {
	return func(o *clientOptions) {
		o.enterpriseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient はベースとなるHTTPクライアントを設定する
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithLogger はリクエスト/レスポンスをログ出力するロガーを設定する
func WithLogger(l logger.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// NewClient は新しいGitHub APIクライアントを作成する
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	base := http.DefaultTransport
	if o.httpClient != nil && o.httpClient.Transport != nil {
		base = o.httpClient.Transport
	}
	baseClient := &http.Client{
		// oauth2のトランスポートの内側に置き、Authorizationヘッダー付きのリクエストを記録する
		Transport: &loggingRoundTripper{base: base, logger: o.logger},
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, baseClient)
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	if o.httpClient != nil {
		tc.Timeout = o.httpClient.Timeout
	}

	gh := github.NewClient(tc)
	if o.enterpriseURL != "" {
		o.logger.Info("using_enterprise_url", "enterprise_url", o.enterpriseURL)
		var err error
		gh, err = gh.WithEnterpriseURLs(o.enterpriseURL+"/api/v3/", o.enterpriseURL+"/api/uploads/")
		if err != nil {
			return nil, fmt.Errorf("invalid enterprise url: %w", err)
		}
	}

	return &Client{
		github: gh,
		logger: o.logger,
	}, nil
}

// BaseURL はAPIのベースURLを返す
func (c *Client) BaseURL() string {
	return c.github.BaseURL.String()
}

// issueResponse はIssue取得APIのレスポンスのうち必要な部分
// ラベルは文字列かオブジェクトのどちらでも受け付ける
type issueResponse struct {
	Labels    []labeler.Label `json:"labels"`
	Assignees []*github.User  `json:"assignees"`
}

// GetIssue はIssueの現在のラベルとアサイン数を取得する
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*labeler.IssueSnapshot, error) {
	if err := validateTarget(owner, repo, number); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("repos/%v/%v/issues/%d", owner, repo, number)
	req, err := c.github.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var issue issueResponse
	if _, err := c.github.Do(ctx, req, &issue); err != nil {
		return nil, ClassifyError(err)
	}

	return &labeler.IssueSnapshot{
		Labels:    labeler.NormalizeLabels(issue.Labels),
		Assignees: len(issue.Assignees),
	}, nil
}

// ReplaceLabels はIssueのラベルを labels で置き換える。空のスライスは全ラベルを外す
func (c *Client) ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	if err := validateTarget(owner, repo, number); err != nil {
		return err
	}

	if labels == nil {
		labels = []string{}
	}
	_, _, err := c.github.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		Labels: &labels,
	})
	if err != nil {
		return ClassifyError(err)
	}
	return nil
}

func validateTarget(owner, repo string, number int) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if repo == "" {
		return errors.New("repo is required")
	}
	if number <= 0 {
		return fmt.Errorf("invalid issue number: %d", number)
	}
	return nil
}

// Ensure Client implements labeler.IssueService interface
var _ labeler.IssueService = (*Client)(nil)
