package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/redsight/redsight/internal/analytics"
	"github.com/redsight/redsight/internal/config"
	"github.com/redsight/redsight/internal/logger"
	"github.com/redsight/redsight/internal/services/reddit"
)

// NewUserCmd creates the user command
func NewUserCmd() *cobra.Command {
	var (
		pretty  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "user <username or profile URL>",
		Short: "Analyze a Reddit user's engagement",
		Long:  "Fetch a Reddit user's recent activity and print the full analysis report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := reddit.ParseProfileURL(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			zapLogger, err := logger.NewDevelopmentLogger(false)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync(zapLogger)
			}()

			client := reddit.NewClient(reddit.ClientConfig{
				BaseURL:           cfg.RedditBaseURL,
				UserAgent:         cfg.RedditUserAgent,
				FetchLimit:        cfg.RedditFetchLimit,
				Timeout:           cfg.RedditTimeout,
				RequestsPerSecond: cfg.RedditRatePerSec,
			}, zapLogger)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			activity, err := client.FetchUserActivity(ctx, username)
			if err != nil {
				switch {
				case reddit.IsNotFound(err):
					return fmt.Errorf("reddit user %q not found", username)
				case reddit.IsRateLimited(err):
					return fmt.Errorf("reddit API rate limit reached, retry later")
				default:
					return fmt.Errorf("failed to fetch activity: %w", err)
				}
			}

			analyzer := analytics.NewAnalyzer(cfg.Location())
			report := analyzer.Analyze(activity, time.Now().UTC())
			report.ID = uuid.New()

			enc := json.NewEncoder(os.Stdout)
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(report)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout for the analysis")

	return cmd
}
