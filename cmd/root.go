package cmd

import (
	"fmt"
	"os"

	"github.com/douhashi/issue-labeler/internal/config"
	"github.com/douhashi/issue-labeler/internal/version"
	"github.com/spf13/cobra"
)

// rootOptions はラベル入力以外のフラグ
type rootOptions struct {
	configFile string
	verbose    bool
	eventPath  string
	owner      string
	repo       string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "issue-labeler",
		Short: "Issue/Pull Requestのラベルを追加・削除する",
		Long: `issue-labelerは、ワークフローを起動したイベントのIssue、Pull Request、
またはプロジェクトカードに対して、設定されたラベルを追加・削除するツールです。

GitHub Actionsの入力（add-labels など）、環境変数（LABELER_ADD_LABELS など）、
設定ファイル、フラグのいずれからでも設定できます。`,
		Version:      version.Get().Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabel(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\n", version.Get()))

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "詳細出力")

	flags := cmd.Flags()
	flags.StringVar(&opts.eventPath, "event-path", "", "イベントペイロードのJSONファイル（デフォルトはGITHUB_EVENT_PATH）")
	flags.StringVar(&opts.owner, "owner", "", "イベントにリポジトリ情報がない場合のオーナー名")
	flags.StringVar(&opts.repo, "repo", "", "イベントにリポジトリ情報がない場合のリポジトリ名（owner/repo形式やURLも可）")

	flags.String(config.KeyAddLabels, "", "追加するラベル（カンマ区切り）")
	flags.String(config.KeyRemoveLabels, "", "削除するラベル（カンマ区切り）")
	flags.String(config.KeyIssueNumber, "", "対象のIssue番号（指定しない場合はイベントから取得）")
	flags.String(config.KeyRepoToken, "", "GitHub APIのトークン（GITHUB_TOKENも使用可）")
	flags.String(config.KeyIgnoreIfAssigned, "", "空でなければ、アサイン済みのIssueは変更しない")
	flags.String(config.KeyIgnoreIfLabeled, "", "空でなければ、ラベル付きのIssueは変更しない")
	flags.String(config.KeyEnterpriseURL, "", "GitHub Enterprise ServerのURL")

	return cmd
}

// Execute はルートコマンドを実行する
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// エラー内容はcobraが出力済み
		os.Exit(1)
	}
}
