package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/researchdesk/internal/app"
	"github.com/alexanderramin/researchdesk/internal/cli"
	"github.com/alexanderramin/researchdesk/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment and .env first; flags parsed by the root command override both.
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	a := &cli.App{
		Config: cfg,
		Open:   app.Build,
	}

	// Detect interactive terminal: the TUI only starts on a real terminal.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(a).Execute()
}
