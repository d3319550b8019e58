package cmd

import (
	"fmt"
	"strings"

	"github.com/skillissue/engine/internal/store"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		skills, err := s.SkillRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}

		if len(skills) == 0 {
			fmt.Println("No skills registered. Add one with: skillissue skill add <id> <name> [description]")
			return nil
		}

		// Header.
		fmt.Printf("%-30s  %-40s  %s\n", "ID", "Name", "Description")
		fmt.Println(strings.Repeat("─", 110))

		for _, sk := range skills {
			name := sk.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("%-30s  %-40s  %s\n", sk.ID, name, sk.Description)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillAddCmd = &cobra.Command{
	Use:   "add <id> <name> [description]",
	Short: "Add or replace a skill in the catalog",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sk := store.Skill{ID: args[0], Name: args[1]}
		if len(args) == 3 {
			sk.Description = args[2]
		}

		if err := s.SkillRepo().Upsert(cmd.Context(), &sk); err != nil {
			return fmt.Errorf("upsert skill: %w", err)
		}

		fmt.Printf("Skill %s (%s) saved.\n", sk.ID, sk.Name)
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAddCmd)
}
