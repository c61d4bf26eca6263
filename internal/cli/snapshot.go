package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medialens/medialens/internal/config"
	"github.com/medialens/medialens/pkg/errors"
	"github.com/medialens/medialens/pkg/render"
	"github.com/medialens/medialens/pkg/snapshot"
	"github.com/medialens/medialens/pkg/view"
)

// newSnapshotCmd creates the snapshot command group.
func newSnapshotCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, list, show and delete dataset snapshots",
		Long: `Save, list, show and delete dataset snapshots.

A snapshot freezes the parsed records of a dataset together with its
statistics, so later runs can compare against it without the original CSV.
Snapshots live on disk by default; configure a mongo URI to share them.`,
	}

	cmd.AddCommand(newSnapshotSaveCmd(configPath))
	cmd.AddCommand(newSnapshotListCmd(configPath))
	cmd.AddCommand(newSnapshotShowCmd(configPath))
	cmd.AddCommand(newSnapshotDeleteCmd(configPath))

	return cmd
}

// openSnapshotStore picks the snapshot backend from the config: MongoDB when
// a URI is configured, the file store otherwise.
func openSnapshotStore(ctx context.Context, cfg config.Config) (snapshot.Store, error) {
	if cfg.Mongo.URI != "" {
		return snapshot.NewMongoStore(ctx, snapshot.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	}
	return snapshot.NewFileStore(cfg.Snapshot.Dir)
}

// newSnapshotSaveCmd creates the "snapshot save" subcommand.
func newSnapshotSaveCmd(configPath *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [file.csv]",
		Short: "Save a snapshot of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path, err := resolveDataPath(args, cfg)
			if err != nil {
				return err
			}
			if name == "" {
				name = path
			}
			if err := errors.ValidateSnapshotName(name); err != nil {
				return err
			}

			store := loadStore(ctx, path)
			if store.Len() == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "refusing to snapshot an empty dataset")
			}

			snaps, err := openSnapshotStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer snaps.Close()

			snap := snapshot.New(name, path, store.Records())
			if err := snaps.Save(ctx, snap); err != nil {
				return err
			}

			printSuccess("Saved snapshot %s", StyleHighlight.Render(name))
			printDetail("ID: %s", snap.ID)
			printDetail("Outlets: %s, audience: %s", formatInt(snap.Stats.TotalOutlets), render.FormatAudience(snap.Stats.TotalAudience))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "snapshot name (default is the source path)")
	return cmd
}

// newSnapshotListCmd creates the "snapshot list" subcommand.
func newSnapshotListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			snaps, err := openSnapshotStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer snaps.Close()

			list, err := snaps.List(ctx)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No snapshots saved")
				return nil
			}

			for _, s := range list {
				fmt.Println(StyleValue.Render(s.Name))
				printDetail("%s · %d outlets · %s", s.ID, s.Stats.TotalOutlets, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// newSnapshotShowCmd creates the "snapshot show" subcommand.
func newSnapshotShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a snapshot's statistics and owner leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			snaps, err := openSnapshotStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer snaps.Close()

			snap, err := snaps.Get(ctx, args[0])
			if err != nil {
				return err
			}

			printKeyValue("Name", snap.Name)
			printKeyValue("Source", snap.Source)
			printKeyValue("Created", snap.CreatedAt.Format("2006-01-02 15:04:05"))
			printKeyValue("Outlets", formatInt(snap.Stats.TotalOutlets))
			printKeyValue("Owners", formatInt(snap.Stats.UniqueOwners))
			printKeyValue("Audience", render.FormatAudience(snap.Stats.TotalAudience))
			printNewline()
			printOwnerTable(view.OwnerAggregates(snap.Records))
			return nil
		},
	}
}

// newSnapshotDeleteCmd creates the "snapshot delete" subcommand.
func newSnapshotDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			snaps, err := openSnapshotStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer snaps.Close()

			if err := snaps.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted snapshot %s", args[0])
			return nil
		},
	}
}
