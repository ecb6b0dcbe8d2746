package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/hirekit/internal/export"
	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/store"
)

func lookup(rt *runtime, id string) (position.Position, error) {
	p, err := rt.store.Get(strings.TrimSpace(id))
	if errors.Is(err, store.ErrNotFound) {
		return p, withCode(exitNotFound, err)
	}
	return p, err
}

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List positions whose title contains query",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			for _, p := range rt.store.List(strings.Join(args, " ")) {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Department, p.Type)
			}
			return nil
		},
	}
}

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a position as a text document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			p, err := lookup(rt, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.Text(p))
			return nil
		},
	}
}

type newOptions struct {
	Title    string
	Template string
}

func newNewCmd(root *rootOptions) *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new --title <title> [--template <name>]",
		Short: "Create and save a position, blank or from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title := strings.TrimSpace(opts.Title)
			tmplName := strings.TrimSpace(opts.Template)
			if title == "" && tmplName == "" {
				return withCode(exitUsage, errors.New("--title is required"))
			}

			var tmpl position.Template
			if tmplName != "" {
				found, ok := position.FindTemplate(tmplName)
				if !ok {
					return withCode(exitUsage, fmt.Errorf("unknown template %q (available: %s)", tmplName, templateNames()))
				}
				tmpl = found
			}

			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			var p position.Position
			if tmplName != "" {
				p = rt.store.CreateFromTemplate(tmpl)
			} else {
				p = rt.store.Create()
			}
			if title != "" {
				p.Title = title
			}
			saved, err := rt.store.Save(cmd.Context(), p)
			if err != nil {
				return withCode(exitStorage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Title, "title", "", "position title")
	cmd.Flags().StringVar(&opts.Template, "template", "", "start from a built-in template, by title")
	return cmd
}

func templateNames() string {
	names := make([]string, len(position.Templates))
	for i, t := range position.Templates {
		names[i] = t.Title
	}
	return strings.Join(names, ", ")
}

func newDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a position; unknown ids are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			removed, err := rt.store.Delete(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return withCode(exitStorage, err)
			}
			if !removed {
				fmt.Fprintf(cmd.ErrOrStderr(), "no position with id %s\n", args[0])
			}
			return nil
		},
	}
}

func newQuestionsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "questions <id>",
		Short: "Regenerate the interview questions of a position and save them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			p, err := lookup(rt, args[0])
			if err != nil {
				return err
			}
			saved, err := rt.store.Save(cmd.Context(), rt.generator.Apply(p))
			if err != nil {
				return withCode(exitStorage, err)
			}
			out := cmd.OutOrStdout()
			for i, q := range saved.InterviewQuestions {
				fmt.Fprintf(out, "%d. [%s] %s\n", i+1, q.Category, q.Question)
			}
			return nil
		},
	}
}

type exportOptions struct {
	Format string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <id> [--format txt|pdf|xlsx]",
		Short: "Write a position document into the export directory and print its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), root.ProjectDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			raw := opts.Format
			if strings.TrimSpace(raw) == "" {
				raw = rt.cfg.DefaultExportFormat()
			}
			format, err := export.ParseFormat(raw)
			if err != nil {
				return withCode(exitUsage, err)
			}
			p, err := lookup(rt, args[0])
			if err != nil {
				return err
			}
			path, err := rt.exporter.Write(p, format)
			if err != nil {
				return err
			}
			rt.journal.Info("Exported %s · %s", p.DisplayTitle(), path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "", "txt, pdf or xlsx (default from config)")
	return cmd
}
