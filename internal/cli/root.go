// Package cli implements zonectl, an offline companion to the delivery
// service. It answers quotes and plans dispatch batches from YAML files using
// the same domain services as the HTTP API, without a database.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/traffic"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	"github.com/spf13/cobra"
)

// TrafficFactory builds the live traffic source for a --traffic-key.
type TrafficFactory func(apiKey string, timeout time.Duration) (ports.TrafficService, error)

// Dependencies are the collaborators the command tree needs. Zero fields are
// filled with production defaults.
type Dependencies struct {
	Version    string
	Logger     *slog.Logger
	NewTraffic TrafficFactory
	Now        func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Version == "" {
		d.Version = "dev"
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.NewTraffic == nil {
		d.NewTraffic = func(apiKey string, timeout time.Duration) (ports.TrafficService, error) {
			return traffic.NewGoogleDistanceMatrixClient(apiKey, timeout)
		}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type globalOptions struct {
	configPath string
	trafficKey string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	deps = deps.withDefaults()
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "zonectl",
		Short:         "Quote deliveries and plan dispatch batches against the delivery zone policy.",
		Version:       deps.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Policy YAML file; defaults are used when omitted.")
	root.PersistentFlags().StringVar(&opts.trafficKey, "traffic-key", "", "Google Maps API key for live ETAs; fallback speed is used when omitted.")

	root.AddCommand(newQuoteCommand(deps, opts))
	root.AddCommand(newPlanCommand(deps, opts))

	return root
}

// environment is what every subcommand works against once flags are parsed.
type environment struct {
	policy  policy.Policy
	traffic ports.TrafficService
}

func loadEnvironment(deps Dependencies, opts *globalOptions) (environment, error) {
	settings, err := LoadPolicyFile(opts.configPath)
	if err != nil {
		return environment{}, err
	}

	p, err := policy.NewPolicy(settings)
	if err != nil {
		return environment{}, fmt.Errorf("policy: %w", err)
	}

	env := environment{policy: p}
	if opts.trafficKey == "" {
		return env, nil
	}

	trafficService, err := deps.NewTraffic(opts.trafficKey, p.TrafficTimeout())
	if err != nil {
		return environment{}, fmt.Errorf("traffic: %w", err)
	}
	env.traffic = trafficService

	return env, nil
}
