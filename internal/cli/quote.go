package cli

import (
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/queries"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"

	"github.com/spf13/cobra"
)

type quoteView struct {
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Serviceable bool     `yaml:"serviceable"`
	DistanceKm  float64  `yaml:"distance_km"`
	Reason      string   `yaml:"reason"`
	Fee         *feeView `yaml:"fee,omitempty"`
	ETA         *etaView `yaml:"eta,omitempty"`
}

func newQuoteCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Check a destination against the zone and print its fee and ETA.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(deps, opts)
			if err != nil {
				return err
			}

			destination, err := kernel.NewLocation(lat, lng)
			if err != nil {
				return err
			}
			query, err := queries.NewQuoteDeliveryQuery(destination)
			if err != nil {
				return err
			}

			handler := queries.NewQuoteDeliveryQueryHandler(
				services.NewZoneValidator(env.policy),
				services.NewFeeCalculator(env.policy),
				services.NewETAEstimator(env.policy, env.traffic, deps.Logger),
			)
			quote, err := handler.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			view := quoteView{
				Latitude:    lat,
				Longitude:   lng,
				Serviceable: quote.Zone.IsServiceable,
				DistanceKm:  quote.Zone.DistanceKm,
				Reason:      quote.Zone.Reason,
			}
			if quote.Fee != nil {
				view.Fee = &feeView{Base: quote.Fee.BaseFee, Distance: quote.Fee.DistanceFee, Total: quote.Fee.TotalFee}
			}
			if quote.ETA != nil {
				view.ETA = &etaView{Seconds: quote.ETA.EstimatedSeconds, Source: string(quote.ETA.Source)}
			}

			return writeYAML(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Destination latitude.")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Destination longitude.")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}
