package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Challenge management commands",
	}

	cmd.AddCommand(newChallengeCreateCmd())
	cmd.AddCommand(newChallengeGetCmd())
	cmd.AddCommand(newChallengeJoinCmd())
	cmd.AddCommand(newChallengeScoreCmd())

	return cmd
}

func newChallengeCreateCmd() *cobra.Command {
	var difficulty string
	var questions int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"difficulty":     difficulty,
				"question_count": questions,
			}
			var result Challenge

			if err := client.Post("/api/v1/challenges", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	cmd.Flags().IntVar(&questions, "questions", 5, "Question count: 3, 5, or 10")

	return cmd
}

func newChallengeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get challenge details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Challenge

			if err := client.Get(fmt.Sprintf("/api/v1/challenges/%s", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newChallengeJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Challenge

			if err := client.Post(fmt.Sprintf("/api/v1/challenges/%s/join", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newChallengeScoreCmd() *cobra.Command {
	var score int
	var timeMS int64

	cmd := &cobra.Command{
		Use:   "score <code>",
		Short: "Submit a score for a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string]any{
				"score":         score,
				"time_taken_ms": timeMS,
			}
			var result Challenge

			if err := client.Post(fmt.Sprintf("/api/v1/challenges/%s/score", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Number of correct answers (required)")
	cmd.Flags().Int64Var(&timeMS, "time-ms", 0, "Completion time in milliseconds (required)")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("time-ms")

	return cmd
}
