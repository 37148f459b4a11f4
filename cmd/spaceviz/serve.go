package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
	"github.com/spaceviz/spaceviz/pkg/dataset"
	"github.com/spaceviz/spaceviz/pkg/httpapi"
	"github.com/spaceviz/spaceviz/pkg/mcpserver"
	"github.com/spaceviz/spaceviz/pkg/missions"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		httpAddr string
		mcpStdio bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the views over HTTP and, optionally, MCP on stdio",
		Long: "Load the dataset in the background and serve the dashboard API. " +
			"With --mcp the MCP tools are served on stdin/stdout as well; " +
			"pass --http-addr=\"\" to serve MCP alone.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("http-addr") {
				cfg.HTTP.Addr = httpAddr
			}
			if cfg.HTTP.Addr == "" && !mcpStdio {
				return errors.New("nothing to serve: set --http-addr or --mcp")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log := klog.FromContext(ctx)

			store := dashboard.NewStore(storeOptions(cfg))
			src := cfg.Source()
			log.Info("loading dataset", "source", src.String())
			store.Load(ctx, func(ctx context.Context) ([]missions.Record, error) {
				return dataset.Load(ctx, src)
			})

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)
			if cfg.HTTP.Addr != "" {
				api := httpapi.NewServer(ctx, store)
				g.Go(func() error {
					defer cancel()
					return api.Run(ctx, cfg.HTTP.Addr)
				})
			}
			if mcpStdio {
				mcp := mcpserver.New(store)
				g.Go(func() error {
					defer cancel()
					return mcp.Serve(ctx)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&mcpStdio, "mcp", false, "Serve MCP tools on stdio")
	return cmd
}
