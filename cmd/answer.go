package cmd

import (
	"fmt"

	"github.com/skillissue/engine/internal/performance"
	"github.com/skillissue/engine/internal/store"
	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Record steady-state challenge outcomes",
}

var answerRecordCmd = &cobra.Command{
	Use:   "record <user-id> <skill-id> <correct|incorrect>",
	Short: "Record an answered challenge and update the user's counters",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var isCorrect bool
		switch args[2] {
		case "correct":
			isCorrect = true
		case "incorrect":
			isCorrect = false
		default:
			return fmt.Errorf("outcome must be correct or incorrect, got %q", args[2])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		if challengeID, _ := cmd.Flags().GetString("challenge"); challengeID != "" {
			if err := s.ChallengeRepo().UpdatePushStatus(ctx, challengeID, store.PushOpened); err != nil {
				return fmt.Errorf("mark push opened: %w", err)
			}
		}

		st, err := performance.NewService(s.PerformanceRepo()).RecordAnswer(ctx, args[0], args[1], isCorrect)
		if err != nil {
			return err
		}

		fmt.Printf("Attempts: %d (%d correct)  Streaks: +%d / -%d  Target: %d\n",
			st.AttemptsTotal, st.CorrectTotal, st.StreakCorrect, st.StreakIncorrect, st.DifficultyTarget)
		return nil
	},
}

var answerIgnoreCmd = &cobra.Command{
	Use:   "ignore <user-id> <skill-id>",
	Short: "Record that the most recent challenge was never opened",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := performance.NewService(s.PerformanceRepo()).RecordIgnored(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Marked ignored. Attempts unchanged at %d.\n", st.AttemptsTotal)
		return nil
	},
}

func init() {
	answerRecordCmd.Flags().String("challenge", "", "Challenge ID; marks its push event as opened")

	answerCmd.AddCommand(answerRecordCmd)
	answerCmd.AddCommand(answerIgnoreCmd)
}
