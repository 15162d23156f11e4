package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/pkg/dist"
	pkglog "github.com/bft-labs/mobscale/pkg/log"
)

const helpDescription = `
Randomize the size of spawned creatures.

Each creature type gets a scale range and a distribution (uniform, normal,
leftexponential, rightexponential) in a TOML file. Creatures without an entry
use defaultmin/defaultmax with a uniform distribution.

Configuration precedence: flags > MOBSCALE_* environment > config file.
`

var exampleUsage = strings.TrimSpace(`
  mobscale init
  mobscale check --config ./config.toml
  mobscale sample --creature zombie -n 10000
  mobscale sample --min 0.5 --max 1.5 --distribution rightexponential --lambda 2
  mobscale simulate < events.jsonl
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type rootOptions struct {
	cfgPath string
	log     zerolog.Logger
}

// configPath returns the --config value or the default location.
func (o *rootOptions) configPath() string {
	if o.cfgPath != "" {
		return o.cfgPath
	}
	return config.DefaultPath()
}

// loadSnapshot loads the config file when it exists and falls back to the
// defaults (plus environment) when it does not.
func (o *rootOptions) loadSnapshot() (config.Snapshot, error) {
	path := o.configPath()
	if path != "" && config.FileExists(path) {
		snap, err := config.Load(path)
		if err != nil {
			return config.Snapshot{}, fmt.Errorf("load config: %w", err)
		}
		return snap, nil
	}

	o.log.Warn().Str("path", path).Msg("config file not found, using defaults")
	snap := config.Default()
	if err := config.ApplyEnv(&snap); err != nil {
		return config.Snapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		return config.Snapshot{}, err
	}
	return snap, nil
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "mobscale",
		Short:         "Randomize the size of spawned creatures",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s (dist %s, log %s)", getVersion(), runtime.GOOS, runtime.GOARCH, dist.Version, pkglog.Version),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "path to config file (default: $HOME/.mobscale/config.toml)")

	root.AddCommand(
		newInitCommand(opts),
		newCheckCommand(opts),
		newSampleCommand(opts),
		newSimulateCommand(opts),
	)
	return root
}

func main() {
	opts := &rootOptions{log: pkglog.NewConsoleLogger(os.Stderr)}

	if err := newRootCommand(opts).Execute(); err != nil {
		opts.log.Error().Err(err).Msg("mobscale")
		os.Exit(1)
	}
}
