package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/skillissue/engine/internal/calibration"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run the calibration battery for a (user, skill) pair",
}

var calibrateQuestionsCmd = &cobra.Command{
	Use:   "questions <skill-id>",
	Short: "Generate any missing probe questions for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		generator, err := newGenerator(cmd.Context(), s)
		if err != nil {
			return err
		}

		svc := newCalibrationService(s, generator)
		result, err := svc.EnsureQuestions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Battery for %s: %d/%d questions ready (%d generated this run)\n",
			args[0], result.Ready, calibration.BatterySize, result.Generated)
		if len(result.Failed) > 0 {
			levels := make([]string, len(result.Failed))
			for i, d := range result.Failed {
				levels[i] = strconv.Itoa(d)
			}
			fmt.Printf("Failed difficulty levels: %s (re-run to retry)\n", strings.Join(levels, ", "))
		}
		return nil
	},
}

var calibrateStartCmd = &cobra.Command{
	Use:   "start <user-id> <skill-id>",
	Short: "Hand the probe battery to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := newCalibrationService(s, nil)
		result, err := svc.Start(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		switch result.Status {
		case calibration.StatusCompleted:
			fmt.Println("Already calibrated; nothing to do.")
		case calibration.StatusGenerating:
			fmt.Println("Battery incomplete. Run: skillissue calibrate questions", args[1])
		default:
			for _, q := range result.Questions {
				fmt.Printf("[difficulty %d] %s\n", q.Difficulty, q.Question)
				for i, opt := range q.Options {
					fmt.Printf("  %c) %s\n", 'A'+i, opt)
				}
			}
			fmt.Printf("\n%d questions. Answer with: skillissue calibrate answer %s %s <difficulty> <option 0-3>\n",
				len(result.Questions), args[0], args[1])
		}
		return nil
	},
}

var calibrateAnswerCmd = &cobra.Command{
	Use:   "answer <user-id> <skill-id> <difficulty> <option>",
	Short: "Record one probe answer (option is the 0-based index)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid difficulty %q: %w", args[2], err)
		}
		option, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid option %q: %w", args[3], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := newCalibrationService(s, nil)
		result, err := svc.SubmitAnswer(cmd.Context(), args[0], args[1], difficulty, option, nil)
		if err != nil {
			if errors.Is(err, calibration.ErrAlreadyAnswered) {
				return fmt.Errorf("difficulty %d is already answered for this pair", difficulty)
			}
			return err
		}

		if result.IsCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The right answer was option %d.\n", result.CorrectOption)
		}
		if result.Explanation != "" {
			fmt.Println(result.Explanation)
		}
		fmt.Printf("Progress: %d/%d\n", result.Progress.Answered, result.Progress.Total)
		return nil
	},
}

var calibrateCompleteCmd = &cobra.Command{
	Use:   "complete <user-id> <skill-id>",
	Short: "Score the battery and seed the difficulty target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := newCalibrationService(s, nil)
		result, err := svc.Complete(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Answered:  %d (%d correct, accuracy %.0f%%)\n",
			result.TotalAnswered, result.TotalCorrect, result.Accuracy*100)
		fmt.Printf("Avg correct difficulty: %.1f\n", result.AverageCorrectDifficulty)
		fmt.Printf("Starting difficulty target: %d\n", result.CalculatedDifficultyTarget)
		return nil
	},
}

var calibrateStatusCmd = &cobra.Command{
	Use:   "status <user-id> <skill-id>",
	Short: "Show calibration status for a (user, skill) pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		svc := newCalibrationService(s, nil)

		st, err := s.CalibrationRepo().GetState(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("get calibration state: %w", err)
		}
		if st == nil {
			fmt.Println("No calibration started.")
			return nil
		}

		fmt.Printf("Status: %s\n", st.Status)
		if st.CalculatedDifficultyTarget != nil {
			fmt.Printf("Calculated target: %d\n", *st.CalculatedDifficultyTarget)
		}
		if st.CompletedAt != nil {
			fmt.Printf("Completed: %s\n", st.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		}

		needs, err := svc.NeedsCalibration(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Needs calibration: %v\n", needs)
		return nil
	},
}

func init() {
	calibrateCmd.AddCommand(calibrateQuestionsCmd)
	calibrateCmd.AddCommand(calibrateStartCmd)
	calibrateCmd.AddCommand(calibrateAnswerCmd)
	calibrateCmd.AddCommand(calibrateCompleteCmd)
	calibrateCmd.AddCommand(calibrateStatusCmd)
}
