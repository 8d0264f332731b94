package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/app"
	"github.com/abhisek/levelup/internal/dashboard"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [code]",
	Short: "Open the parent dashboard (optionally signed in as a student code)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := ""
		if len(args) == 1 {
			code = args[0]
		}
		return runApp(cmd, code)
	},
}

// runApp opens the store, builds the dashboard service, and launches the TUI.
func runApp(cmd *cobra.Command, code string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := dashboard.NewService(st.Snapshots(), dashboardOptions())
	opts := app.Options{Loader: svc}

	if code != "" {
		d, err := svc.Load(cmd.Context(), code)
		switch {
		case errors.Is(err, dashboard.ErrStudentNotFound):
			return fmt.Errorf("no student with code %q", code)
		case err != nil:
			return err
		}
		opts.Initial = d
	}

	return app.Run(opts)
}
