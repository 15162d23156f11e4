package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/mobscale/internal/config"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print it as resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			for _, name := range snap.MobNames() {
				m := snap.Mobs[name]
				ev := opts.log.Info().
					Str("creature", name).
					Float64("min", m.Min).
					Float64("max", m.Max).
					Str("distribution", m.Kind().String()).
					Float64("lambda", m.Lambda)
				if m.Max <= m.Min {
					ev = ev.Bool("fixed_scale", true)
				}
				ev.Msg("mob")
			}
			opts.log.Info().
				Float64("defaultmin", snap.DefaultMin).
				Float64("defaultmax", snap.DefaultMax).
				Int("mobs", len(snap.Mobs)).
				Msg("configuration valid")

			b, err := config.Encode(snap)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
