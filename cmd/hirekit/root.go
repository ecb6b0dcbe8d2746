package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/hirekit/internal/tui"
)

type rootOptions struct {
	ProjectDir string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "hirekit",
		Short:         "Hiring toolkit: positions, interview questions, scorecards and onboarding plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context(), opts.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			app, err := tui.NewApp(rt.tuiDeps(), tui.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			// Run blocks until the user quits
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ProjectDir, "project", ".", "project directory holding .hirekit/")

	cmd.AddCommand(newListCmd(&opts))
	cmd.AddCommand(newShowCmd(&opts))
	cmd.AddCommand(newNewCmd(&opts))
	cmd.AddCommand(newDeleteCmd(&opts))
	cmd.AddCommand(newQuestionsCmd(&opts))
	cmd.AddCommand(newExportCmd(&opts))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
