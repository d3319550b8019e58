package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Design steady-state challenges",
}

var challengeDesignCmd = &cobra.Command{
	Use:   "design <user-id> <skill-id>",
	Short: "Design one challenge at the user's current difficulty target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, skillID := args[0], args[1]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		needs, err := newCalibrationService(s, nil).NeedsCalibration(ctx, userID, skillID)
		if err != nil {
			return err
		}
		if needs {
			return fmt.Errorf("pair %s/%s is not calibrated; run calibrate first", userID, skillID)
		}

		perf, err := s.PerformanceRepo().Get(ctx, userID, skillID)
		if err != nil {
			return fmt.Errorf("get performance state: %w", err)
		}

		designer, err := newDesigner(ctx, s)
		if err != nil {
			return err
		}

		ch, err := designer.DesignChallenge(ctx, userID, skillID, perf.DifficultyTarget)
		if err != nil {
			return err
		}
		if ch == nil {
			fmt.Println("No challenge produced this run; see the trace log for the reason.")
			return nil
		}

		fmt.Printf("Challenge %s (difficulty %d)\n\n", ch.ID, ch.Difficulty)
		fmt.Println(ch.Question)
		for i, opt := range ch.Options {
			fmt.Printf("  %c) %s\n", 'A'+i, opt)
		}
		return nil
	},
}

func init() {
	challengeCmd.AddCommand(challengeDesignCmd)
}
