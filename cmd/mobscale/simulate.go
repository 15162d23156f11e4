package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/internal/host"
	pkglog "github.com/bft-labs/mobscale/pkg/log"
	"github.com/bft-labs/mobscale/pkg/mobscale"
	"github.com/bft-labs/mobscale/plugins/configwatcher"
)

func newSimulateCommand(opts *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Act as a game server: read JSON events from stdin, write applied scales to stdout",
		Long: `Act as a game server: read JSON events from stdin, write applied scales to stdout.

Events, one per line:
  {"type":"spawn","entity":{"id":"1","name":"Zombie","world":"world"},"reason":"NATURAL"}
  {"type":"chunkload","world":"world","entities":[{"id":"2","name":"Cow"}]}
  {"type":"command","args":["reload"],"permissions":["mobsizerandomizer.reload"]}
  {"type":"tabcomplete","args":["re"],"permissions":["mobsizerandomizer.reload"]}

The configuration is reloaded on SIGHUP and, with --watch, whenever the file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			path := opts.configPath()
			ropts := []mobscale.Option{
				mobscale.WithLogger(pkglog.NewZerologAdapterWithLogger(opts.log)),
			}
			if path != "" && config.FileExists(path) {
				ropts = append(ropts, mobscale.WithConfigPath(path))
				if watch {
					ropts = append(ropts, configwatcher.WithDefaultConfigWatcher())
				}
			}

			r, err := mobscale.New(snap, ropts...)
			if err != nil {
				return fmt.Errorf("create randomizer: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := r.Start(ctx); err != nil {
				return fmt.Errorf("start: %w", err)
			}
			defer func() {
				if err := r.Stop(); err != nil {
					opts.log.Error().Err(err).Msg("stop")
				}
			}()

			go reloadOnHangup(ctx, r, opts)

			opts.log.Info().Int("mobs", len(snap.Mobs)).Msg("Mob Size Randomizer Loaded.")
			err = host.Run(ctx, r, cmd.InOrStdin(), cmd.OutOrStdout())
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "reload when the config file changes")
	return cmd
}

func reloadOnHangup(ctx context.Context, r *mobscale.Randomizer, opts *rootOptions) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := r.Reload(); err != nil {
				opts.log.Warn().Err(err).Msg("reload on SIGHUP failed")
			}
		}
	}
}
