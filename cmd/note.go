package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Leave notes for parents",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <code> <text...>",
	Short: "Add a teacher note to a student",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		teacher, _ := cmd.Flags().GetString("teacher")
		if teacher == "" {
			teacher = os.Getenv("LEVELUP_TEACHER")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		student, err := st.Students().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		n, err := st.Notes().Create(cmd.Context(), student.ID, strings.Join(args[1:], " "), teacher)
		if err != nil {
			return err
		}
		fmt.Printf("Added note %s for %s\n", n.ID, student.Name)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list <code>",
	Short: "List a student's notes, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		student, err := st.Students().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		notes, err := st.Notes().ForStudent(cmd.Context(), student.ID)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Printf("No notes for %s.\n", student.Name)
			return nil
		}
		for _, n := range notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.CreatedAt.Local().Format("2006-01-02 15:04"), n.TeacherName)
			fmt.Printf("    %s\n\n", n.Text)
		}
		return nil
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Notes().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed note", args[0])
		return nil
	},
}

func init() {
	noteAddCmd.Flags().String("teacher", "", "Teacher name shown with the note (default $LEVELUP_TEACHER)")
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteRmCmd)
}
