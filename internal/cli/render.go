package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/medialens/medialens/internal/config"
	"github.com/medialens/medialens/pkg/cache"
	"github.com/medialens/medialens/pkg/errors"
	"github.com/medialens/medialens/pkg/hierarchy"
	"github.com/medialens/medialens/pkg/observability"
	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/render"
	"github.com/medialens/medialens/pkg/selection"
)

// Output formats for the render command.
const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatDOT  = "dot"
	formatJSON = "json"
)

// newRenderCmd creates the render command: static ownership-tree output.
func newRenderCmd(configPath *string) *cobra.Command {
	var (
		layout   string
		format   string
		output   string
		owner    string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render the ownership hierarchy to SVG, PNG, DOT or JSON",
		Long: `Render the ownership hierarchy to SVG, PNG, DOT or JSON.

The tree layout draws owners top-down with their outlets beneath them. The
radial layout arranges owners around a central hub. Defunct outlets are
drawn dashed; pass --owner to highlight one owner the way the dashboard
hover does.

SVG and PNG artifacts are cached locally, keyed by the dataset contents and
the render options. Use --no-cache to force a fresh render.`,
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
			if layout != render.LayoutTree && layout != render.LayoutRadial {
				return errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q (use %s or %s)", layout, render.LayoutTree, render.LayoutRadial)
			}

			return runRender(cmd, path, renderParams{
				layout:   layout,
				format:   format,
				output:   output,
				owner:    owner,
				detailed: detailed,
				noCache:  noCache,
			})
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "l", render.LayoutTree, "layout: tree or radial")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg, png, dot or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default derives from the input name)")
	cmd.Flags().StringVar(&owner, "owner", "", "highlight this owner")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include founding span and audience in outlet labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

type renderParams struct {
	layout   string
	format   string
	output   string
	owner    string
	detailed bool
	noCache  bool
}

// runRender loads the dataset and produces the requested artifact, going
// through the file cache for the expensive graphviz formats.
func runRender(cmd *cobra.Command, path string, p renderParams) error {
	ctx := cmd.Context()

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	res, err := outlet.ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	for _, w := range res.Warnings {
		logger.Warnf("%s: %s", path, w)
	}

	store := outlet.NewStore(res.Records)
	owners := hierarchy.Build(store.Records())

	var sel *selection.State
	if p.owner != "" {
		sel = &selection.State{}
		sel.Hover(&p.owner)
	}

	outPath := p.output
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath = base + "." + p.format
	}

	switch p.format {
	case formatJSON:
		if err := hierarchy.WriteFile(owners, outPath); err != nil {
			return err
		}
	case formatDOT:
		dot := render.ToDOT(owners, sel, render.Options{Layout: p.layout, Detailed: p.detailed})
		if err := os.WriteFile(outPath, []byte(dot), 0644); err != nil {
			return err
		}
	case formatSVG, formatPNG:
		data, cached, err := renderArtifact(cmd, raw, owners, sel, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return err
		}
		printStats(store.Len(), len(owners), cached)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (use svg, png, dot or json)", p.format)
	}

	printSuccess("Rendered %s", p.layout)
	printFile(outPath)
	return nil
}

// renderArtifact produces an SVG or PNG, consulting the file cache keyed by
// the dataset hash and the render options. Highlighted renders bypass the
// cache because the selection is not part of the key.
func renderArtifact(cmd *cobra.Command, raw []byte, owners []hierarchy.Node, sel *selection.State, p renderParams) ([]byte, bool, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var store cache.Cache = cache.NewNullCache()
	if !p.noCache && sel == nil {
		dir, err := cacheDir()
		if err != nil {
			return nil, false, err
		}
		if fc, err := cache.NewFileCache(dir); err == nil {
			store = fc
		} else {
			logger.Warnf("Cache unavailable: %v", err)
		}
	}
	defer store.Close()

	key := cache.ArtifactKey(cache.Hash(raw), p.layout, p.format, p.detailed)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	dot := render.ToDOT(owners, sel, render.Options{Layout: p.layout, Detailed: p.detailed})

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", p.layout))
	spinner.Start()
	start := time.Now()
	observability.Ingest().OnRenderStart(ctx, p.layout, p.format)

	var (
		data []byte
		err  error
	)
	switch p.format {
	case formatPNG:
		data, err = render.PNG(ctx, dot)
	default:
		data, err = render.SVG(ctx, dot)
	}
	observability.Ingest().OnRenderComplete(ctx, p.layout, p.format, time.Since(start), err)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, false, err
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}
	return data, false, nil
}
