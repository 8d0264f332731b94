package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage students",
}

var studentAddCmd = &cobra.Command{
	Use:   "add <name> <code>",
	Short: "Add a student with the code parents sign in with",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.Students().Create(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", s.Name, s.Code)
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		students, err := st.Students().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(students) == 0 {
			fmt.Println("No students yet.")
			return nil
		}

		fmt.Printf("%-30s  %-16s  %s\n", "Name", "Code", "Added")
		fmt.Println(strings.Repeat("─", 62))
		for _, s := range students {
			fmt.Printf("%-30s  %-16s  %s\n", s.Name, s.Code, s.CreatedAt.Local().Format("2006-01-02"))
		}
		fmt.Printf("\n%d students\n", len(students))
		return nil
	},
}

var studentRmCmd = &cobra.Command{
	Use:   "rm <code>",
	Short: "Remove a student and all their progress, exams and notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.Students().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := st.Students().Delete(cmd.Context(), s.ID); err != nil {
			return err
		}
		fmt.Printf("Removed %s (%s)\n", s.Name, s.Code)
		return nil
	},
}

func init() {
	studentCmd.AddCommand(studentAddCmd, studentListCmd, studentRmCmd)
}
