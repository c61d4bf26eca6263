package cli

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medialens/medialens/internal/config"
)

// newDashCmd creates the dash command: the interactive terminal dashboard.
func newDashCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dash [file.csv]",
		Short: "Explore a dataset interactively",
		Long: `Explore a dataset interactively.

The dashboard shows the owner leaderboard with live statistics. Moving the
cursor hovers an owner, enter selects it and drills into its outlets, and
esc steps back out. All panels stay in sync with the current selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path, err := resolveDataPath(args, cfg)
			if err != nil {
				return err
			}

			store := loadStore(cmd.Context(), path)

			model := NewDashModel(store)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
