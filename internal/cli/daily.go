package cli

import (
	"github.com/spf13/cobra"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily challenge commands",
	}

	cmd.AddCommand(newDailyGetCmd())
	cmd.AddCommand(newDailyStatsCmd())
	cmd.AddCommand(newDailyCompleteCmd())

	return cmd
}

func newDailyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show today's daily challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DailySet

			if err := client.Get("/api/v1/daily", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDailyStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your daily challenge stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DailyStats

			if err := client.Get("/api/v1/daily/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDailyCompleteCmd() *cobra.Command {
	var correct int

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Record today's daily challenge result",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"correct": correct}
			var result DailyComplete

			if err := client.Post("/api/v1/daily/complete", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&correct, "correct", 0, "Number of correct answers (required)")
	_ = cmd.MarkFlagRequired("correct")

	return cmd
}
