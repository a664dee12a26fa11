package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/researchdesk/internal/app"
	"github.com/alexanderramin/researchdesk/internal/config"
	"github.com/alexanderramin/researchdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds the configuration and the services used by commands and the TUI.
type App struct {
	Config   config.Config
	Projects service.ProjectService

	// Open builds the runtime once flags are parsed. Left nil when Projects
	// is wired directly, as tests do.
	Open func(ctx context.Context, cfg config.Config) (*app.Runtime, error)

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	runtime *app.Runtime
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "researchdesk" command. With no
// subcommand it starts the TUI on a terminal and prints the list otherwise.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "researchdesk",
		Short:         "Browse and manage research projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() {
				return runTUI(a)
			}
			return printList(cmd, a, listOptions{})
		},
	}

	a.Config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newStatsCmd(a),
	)
	return root
}

func (a *App) open(ctx context.Context) error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Projects != nil || a.Open == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := a.Open(ctx, a.Config)
	if err != nil {
		return fmt.Errorf("starting: %w", err)
	}
	a.runtime = rt
	a.Projects = rt.Projects
	return nil
}

func (a *App) close() error {
	if a.runtime == nil {
		return nil
	}
	err := a.runtime.Close()
	a.runtime = nil
	return err
}
