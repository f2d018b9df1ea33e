package builders

import (
	"github.com/douhashi/issue-labeler/internal/config"
)

// ConfigBuilder builds config.Config instances from raw input strings
type ConfigBuilder struct {
	in config.Inputs
}

// NewConfigBuilder creates a new ConfigBuilder with a dummy token and no labels
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		in: config.Inputs{
			RepoToken: "test-token",
		},
	}
}

// WithAddLabels sets the comma-separated add-labels input
func (b *ConfigBuilder) WithAddLabels(labels string) *ConfigBuilder {
	b.in.AddLabels = labels
	return b
}

// WithRemoveLabels sets the comma-separated remove-labels input
func (b *ConfigBuilder) WithRemoveLabels(labels string) *ConfigBuilder {
	b.in.RemoveLabels = labels
	return b
}

// WithIssueNumber sets the explicit issue-number input
func (b *ConfigBuilder) WithIssueNumber(number string) *ConfigBuilder {
	b.in.IssueNumber = number
	return b
}

// WithIgnoreIfAssigned enables the ignore-if-assigned guard
func (b *ConfigBuilder) WithIgnoreIfAssigned() *ConfigBuilder {
	b.in.IgnoreIfAssigned = "true"
	return b
}

// WithIgnoreIfLabeled enables the ignore-if-labeled guard
func (b *ConfigBuilder) WithIgnoreIfLabeled() *ConfigBuilder {
	b.in.IgnoreIfLabeled = "true"
	return b
}

// WithEnterpriseURL sets the enterprise-url input
func (b *ConfigBuilder) WithEnterpriseURL(url string) *ConfigBuilder {
	b.in.EnterpriseURL = url
	return b
}

// Build returns the config
func (b *ConfigBuilder) Build() *config.Config {
	return b.in.Config()
}
