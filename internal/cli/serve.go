package cli

import (
	"github.com/spf13/cobra"

	"github.com/medialens/medialens/internal/config"
	"github.com/medialens/medialens/internal/httpapi"
	"github.com/medialens/medialens/pkg/session"
)

// newServeCmd creates the serve command: the HTTP view API.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [file.csv]",
		Short: "Serve the view API over HTTP",
		Long: `Serve the view API over HTTP.

Each browser session carries its own selection state, identified by a
cookie. Sessions live in memory by default; configure a redis address to
share them across instances.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path, err := resolveDataPath(args, cfg)
			if err != nil {
				return err
			}

			store := loadStore(ctx, path)

			var sessions session.Store = session.NewMemoryStore()
			if cfg.Redis.Addr != "" {
				rs, err := session.NewRedisStore(ctx, session.RedisConfig{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				})
				if err != nil {
					return err
				}
				sessions = rs
				logger.Infof("Sessions backed by redis at %s", cfg.Redis.Addr)
			}
			defer sessions.Close()

			listen := cfg.Server.Addr
			if addr != "" {
				listen = addr
			}

			srv := httpapi.New(store, sessions, logger)
			logger.Infof("Listening on %s", listen)
			return srv.ListenAndServe(listen)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides the config file)")
	return cmd
}
