package cmd

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gamehub/internal/eventbus"
	"gamehub/internal/ui"
	"gamehub/internal/ui/viewmodels"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively (default)",
		Long: `Opens the interactive browser. Pages hold 10 games each; type / to
search by name, enter to open a game and ? for all keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}
}

func runBrowse(cmd *cobra.Command, opts *rootOptions) error {
	client, err := opts.client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	bus := eventbus.New()
	defer bus.Close()

	// Fetch completions are replayed inside the program's update loop
	var program *tea.Program
	list := viewmodels.NewListViewModel(bus, client,
		viewmodels.WithBatchSize(opts.cfg.Catalog.BatchSize),
		viewmodels.WithDispatcher(func(fn func()) {
			program.Send(ui.Dispatch(fn))
		}),
	)
	defer list.Close()

	model := ui.NewModel(ctx, list, ui.Options{ShowCovers: opts.cfg.UI.ShowCovers})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program = tea.NewProgram(model, programOpts...)
	model.SetProgram(program)

	unsubscribe := ui.ForwardEvents(bus, program.Send)
	defer unsubscribe()

	log.Printf("Starting UI...")
	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
