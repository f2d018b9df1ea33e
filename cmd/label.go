package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/douhashi/issue-labeler/internal/config"
	"github.com/douhashi/issue-labeler/internal/event"
	"github.com/douhashi/issue-labeler/internal/github"
	"github.com/douhashi/issue-labeler/internal/labeler"
	"github.com/douhashi/issue-labeler/internal/logger"
	"github.com/douhashi/issue-labeler/internal/paths"
	"github.com/douhashi/issue-labeler/internal/utils"
	"github.com/fatih/color"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
)

func runLabel(cmd *cobra.Command, opts *rootOptions) error {
	action := githubactions.New(githubactions.WithWriter(cmd.OutOrStdout()))
	inActions := action.Getenv("GITHUB_ACTIONS") == "true"

	logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if opts.verbose {
		logOpts = append(logOpts, logger.WithLevel("debug"))
	}
	log, err := logger.NewFromEnv(logOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := loadConfig(cmd, opts, action)
	if err != nil {
		return err
	}
	log.Debug("config_loaded",
		"add_labels", cfg.AddLabels,
		"remove_labels", cfg.RemoveLabels,
		"issue_number", cfg.IssueNumber,
		"ignore_if_assigned", cfg.IgnoreIfAssigned,
		"ignore_if_labeled", cfg.IgnoreIfLabeled,
		"enterprise_url", cfg.EnterpriseURL,
	)

	payload, err := loadPayload(action, opts)
	if err != nil {
		return err
	}

	clientOpts := []github.ClientOption{github.WithLogger(log)}
	if cfg.EnterpriseURL != "" {
		clientOpts = append(clientOpts, github.WithEnterpriseURL(cfg.EnterpriseURL))
	}
	client, err := github.NewClient(cfg.Token, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	result, err := labeler.New(client, log).Run(cmd.Context(), cfg, payload)
	if err != nil {
		log.Error("label_failed",
			"error", err.Error(),
			"error_type", github.ErrorType(err).String(),
		)
		if inActions {
			action.Errorf("%s", err)
		}
		return err
	}

	log.Info("label_finished", "status", result.Status.String(), "issue_number", result.IssueNumber)
	printResult(cmd.OutOrStdout(), result)

	if inActions {
		action.SetOutput("result", result.Message)
		if result.Updated() {
			action.SetOutput("labels", strings.Join(result.Labels, ","))
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command, opts *rootOptions, inputs config.InputGetter) (*config.Config, error) {
	loader := config.NewLoader().WithActionInputs(inputs)
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	configFile := opts.configFile
	if configFile == "" {
		// 未指定の場合は ~/.config/issue-labeler/issue-labeler.yml などを探す
		configFile = paths.NewFromEnv().FindConfigFile()
	}
	if err := loader.ReadFile(configFile); err != nil {
		return nil, err
	}

	cfg := loader.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadPayload(action *githubactions.Action, opts *rootOptions) (*event.Payload, error) {
	var (
		payload *event.Payload
		err     error
	)
	if opts.eventPath != "" {
		payload, err = event.Load(opts.eventPath)
	} else {
		payload, err = event.FromAction(action)
	}
	if err != nil {
		return nil, err
	}

	owner, repo := opts.owner, opts.repo
	if owner == "" && strings.Contains(repo, "/") {
		info, err := utils.ParseRepository(repo)
		if err != nil {
			return nil, err
		}
		owner, repo = info.Owner, info.Repo
	}
	if owner != "" || repo != "" {
		payload.SetRepositoryIfMissing(owner, repo)
	}
	return payload, nil
}

// printResult は結果メッセージを出力する。メッセージが空の場合は何も出力しない
func printResult(w io.Writer, result *labeler.Result) {
	if result.Message == "" {
		return
	}

	c := color.New(color.FgYellow)
	if result.Updated() {
		c = color.New(color.FgGreen)
	}
	c.Fprintln(w, result.Message)
}
