package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cryptonews/internal/aggregator"
	"cryptonews/internal/config"
	"cryptonews/internal/logger"

	"github.com/spf13/cobra"
)

var (
	envFile string
	pretty  bool
)

var rootCmd = &cobra.Command{
	Use:   "fetcher <query>",
	Short: "Search every configured news source once and print the merged JSON",
	Long: `Runs the same aggregation as GET /news?query=<query> without starting
the server. Upstream failures are logged to stderr; stdout always receives a
JSON array.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var envFiles []string
		if envFile != "" {
			envFiles = append(envFiles, envFile)
		}

		cfg, err := config.Load(envFiles...)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if _, err := logger.Setup(os.Stderr, cfg.LogLevel); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		articles := aggregator.New(aggregator.ClientsFromConfig(cfg), nil).Search(ctx, args[0])

		enc := json.NewEncoder(cmd.OutOrStdout())
		if pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(articles)
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Path to a .env file (default .env)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
