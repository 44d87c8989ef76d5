package cli

import (
	"github.com/spf13/cobra"

	"github.com/darkstore/rackplan/internal/server"
	"github.com/darkstore/rackplan/pkg/cache"
	"github.com/darkstore/rackplan/pkg/pipeline"
	"github.com/darkstore/rackplan/pkg/store"
)

type serveOpts struct {
	addr    string
	redis   string
	mongo   string
	noCache bool
}

func newServeCmd() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run an HTTP server exposing the optimizer as a JSON API.

Solutions are computed by POST /api/optimize, stored, and retrievable as
JSON, SVG or a text report. Storage is in-memory unless --mongo is given.
Solution caching uses the local file cache unless --redis is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for solution caching (host:port)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "mongodb URI for solution storage")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable solution caching")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var c cache.Cache
	switch {
	case opts.noCache:
		c = cache.NewNullCache()
	case opts.redis != "":
		rc, err := cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			return err
		}
		logger.Info("using redis cache", "addr", opts.redis)
		c = rc
	default:
		fc, err := newCache(false)
		if err != nil {
			return err
		}
		c = fc
	}

	var st store.SolutionStore
	if opts.mongo != "" {
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongo})
		if err != nil {
			return err
		}
		logger.Info("using mongodb store")
		st = ms
	} else {
		st = store.NewMemoryStore()
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			logger.Error("close store", "err", err)
		}
	}()

	runner := pipeline.NewRunner(c, logger)
	defer runner.Close()

	srv := server.New(runner, st, logger)
	return srv.ListenAndServe(ctx, opts.addr)
}
