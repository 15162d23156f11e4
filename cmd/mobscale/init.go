package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/mobscale/internal/config"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config file if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath()
			if path == "" {
				return fmt.Errorf("no config path: pass --config")
			}
			wrote, err := config.WriteDefault(path)
			if err != nil {
				return fmt.Errorf("write default config: %w", err)
			}
			if wrote {
				opts.log.Info().Str("path", path).Msg("default configuration written")
			} else {
				opts.log.Info().Str("path", path).Msg("configuration already exists")
			}
			return nil
		},
	}
}
