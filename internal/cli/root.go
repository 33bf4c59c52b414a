package cli

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/projects/internal/cli/formatter"
	"github.com/alexanderramin/projects/internal/service"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by the commands.
type App struct {
	Projects service.ProjectService
	Logger   *slog.Logger

	// IsInteractive reports whether the session is attached to a terminal.
	// Nil means not interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the "projects" command. Run without arguments it
// starts the interactive session.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "projects",
		Short:         "Record projects and their estimated and actual hours",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.interactive() {
				fmt.Fprintln(out, formatter.FormatWelcome())
			}
			menu := NewMenu(cmd.InOrStdin(), out, app.Projects, WithLogger(app.Logger))
			menu.Run(cmd.Context())
			return nil
		},
	}

	root.AddCommand(newListCmd(app))

	return root
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored projects and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}
