package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/ui/components"
)

var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Print a student's dashboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := dashboard.NewService(st.Snapshots(), dashboardOptions())
		d, err := svc.Load(cmd.Context(), args[0])
		if errors.Is(err, dashboard.ErrStudentNotFound) {
			return fmt.Errorf("no student with code %q", args[0])
		}
		if err != nil {
			return err
		}

		if d.Problem != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", d.Problem)
		}
		if len(d.Drift) > 0 {
			fmt.Fprintf(os.Stderr, "warning: %d progress row(s) disagree with their lesson's level; run `levelup doctor`\n", len(d.Drift))
		}

		fmt.Println(components.Dashboard(d, width))
		return nil
	},
}

func init() {
	showCmd.Flags().Int("width", 100, "Render width in columns")
}
