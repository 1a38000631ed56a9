package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardTopCmd())
	cmd.AddCommand(newLeaderboardMeCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())

	return cmd
}

func newLeaderboardTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top <difficulty>",
		Short: "Show the top scores for a difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/leaderboard/%s", args[0])
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result []LeaderboardEntry

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries (default: server default)")

	return cmd
}

func newLeaderboardMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me <difficulty>",
		Short: "Show your best score for a difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaderboardEntry

			if err := client.Get(fmt.Sprintf("/api/v1/leaderboard/%s/me", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var difficulty string
	var score int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score to the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"difficulty": difficulty,
				"score":      score,
			}
			var result map[string]bool

			if err := client.Post("/api/v1/leaderboard/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result["improved"] {
				out.PrintMessage("New personal best!")
			} else {
				out.PrintMessage("Score did not beat your personal best")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: easy, medium, hard (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score (required)")
	_ = cmd.MarkFlagRequired("difficulty")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
