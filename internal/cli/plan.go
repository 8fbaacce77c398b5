package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/spf13/cobra"
)

var ErrEmptyBatch = errors.New("batch has no requests")

// BatchFile is the YAML input of the plan command. Ids are optional; missing
// ones are generated.
//
//	requests:
//	  - id: 0b6f4f0e-3c3a-4c55-9d0b-2f1f3b1c9a10
//	    latitude: 34.1563
//	    longitude: 73.2217
//	  - latitude: 34.1500
//	    longitude: 73.2000
type BatchFile struct {
	Requests []BatchRequest `yaml:"requests"`
}

// BatchRequest coordinates are pointers so a missing key is told apart from 0.
type BatchRequest struct {
	ID        string   `yaml:"id"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

// LoadBatchFile reads and decodes a batch.
func LoadBatchFile(path string) (BatchFile, error) {
	var b BatchFile
	if err := decodeYAMLFile(path, &b); err != nil {
		return BatchFile{}, fmt.Errorf("batch: %w", err)
	}
	if len(b.Requests) == 0 {
		return BatchFile{}, ErrEmptyBatch
	}
	return b, nil
}

type planView struct {
	RunID     string         `yaml:"run_id"`
	CreatedAt time.Time      `yaml:"created_at"`
	Stops     []stopView     `yaml:"stops"`
	Rejected  []rejectedView `yaml:"rejected,omitempty"`
}

type stopView struct {
	Sequence   int     `yaml:"sequence"`
	RequestID  string  `yaml:"request_id"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	DistanceKm float64 `yaml:"distance_km"`
	Fee        feeView `yaml:"fee"`
	ETA        etaView `yaml:"eta"`
}

type rejectedView struct {
	RequestID  string  `yaml:"request_id"`
	DistanceKm float64 `yaml:"distance_km"`
	Reason     string  `yaml:"reason"`
}

func newPlanCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Order a batch of destinations nearest first, skipping those outside the zone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(deps, opts)
			if err != nil {
				return err
			}

			batch, err := LoadBatchFile(file)
			if err != nil {
				return err
			}

			zones := services.NewZoneValidator(env.policy)
			fees := services.NewFeeCalculator(env.policy)
			etas := services.NewETAEstimator(env.policy, env.traffic, deps.Logger)
			planner := services.NewNearestFirstPlanner(env.policy)

			now := deps.Now()
			accepted := make([]*delivery.Request, 0, len(batch.Requests))
			view := planView{}

			for i, r := range batch.Requests {
				request, buildErr := buildRequest(r, now)
				if buildErr != nil {
					return fmt.Errorf("request %d: %w", i+1, buildErr)
				}

				zone, zoneErr := zones.Validate(request.Destination())
				if zoneErr != nil {
					return fmt.Errorf("request %d: %w", i+1, zoneErr)
				}
				if !zone.IsServiceable {
					view.Rejected = append(view.Rejected, rejectedView{
						RequestID:  request.ID().String(),
						DistanceKm: zone.DistanceKm,
						Reason:     zone.Reason,
					})
					continue
				}
				accepted = append(accepted, request)
			}

			plan, err := planner.Plan(accepted)
			if err != nil {
				return err
			}

			view.RunID = plan.ID().String()
			view.CreatedAt = plan.CreatedAt()
			view.Stops = make([]stopView, 0, plan.Len())
			for _, stop := range plan.Stops() {
				fee := fees.QuoteDistance(stop.DistanceKm())
				eta, etaErr := etas.Estimate(cmd.Context(), stop.Destination())
				if etaErr != nil {
					return etaErr
				}

				view.Stops = append(view.Stops, stopView{
					Sequence:   stop.Sequence(),
					RequestID:  stop.RequestID().String(),
					Latitude:   stop.Destination().Latitude(),
					Longitude:  stop.Destination().Longitude(),
					DistanceKm: stop.DistanceKm(),
					Fee:        feeView{Base: fee.BaseFee, Distance: fee.DistanceFee, Total: fee.TotalFee},
					ETA:        etaView{Seconds: eta.EstimatedSeconds, Source: string(eta.Source)},
				})
			}

			return writeYAML(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Batch YAML file.")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func buildRequest(r BatchRequest, submittedAt time.Time) (*delivery.Request, error) {
	id := kernel.NewUUID()
	if r.ID != "" {
		parsed, err := kernel.UUIDFromString(r.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	if err := errors.Join(
		requiredCoordinate("latitude", r.Latitude),
		requiredCoordinate("longitude", r.Longitude),
	); err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(*r.Latitude, *r.Longitude)
	if err != nil {
		return nil, err
	}

	return delivery.NewRequest(id, destination, submittedAt)
}

func requiredCoordinate(name string, v *float64) error {
	if v == nil {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
