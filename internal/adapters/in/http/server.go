package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/queries"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/generated/servers"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	SubmitDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitDeliveryRequestCommand) error
	}
	CancelDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.CancelDeliveryRequestCommand) error
	}
	PlanDispatchHandler interface {
		Handle(ctx context.Context, cmd commands.PlanDispatchCommand) (dispatch.Plan, error)
	}
	QuoteDeliveryHandler interface {
		Handle(ctx context.Context, query queries.QuoteDeliveryQuery) (queries.QuoteDeliveryQueryResponse, error)
	}
	PendingDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.GetPendingRequestsQuery) ([]queries.GetPendingRequestsQueryResponse, error)
	}
	DispatchRunHandler interface {
		Handle(ctx context.Context, query queries.GetDispatchRunQuery) (queries.GetDispatchRunQueryResponse, error)
	}
)

// Server implements servers.ServerInterface on top of the application
// command and query handlers.
type Server struct {
	submitDeliveryHandler SubmitDeliveryHandler
	cancelDeliveryHandler CancelDeliveryHandler
	planDispatchHandler   PlanDispatchHandler

	quoteDeliveryHandler     QuoteDeliveryHandler
	pendingDeliveriesHandler PendingDeliveriesHandler
	dispatchRunHandler       DispatchRunHandler

	logger *slog.Logger
}

func NewServer(
	submitDeliveryHandler SubmitDeliveryHandler,
	cancelDeliveryHandler CancelDeliveryHandler,
	planDispatchHandler PlanDispatchHandler,
	quoteDeliveryHandler QuoteDeliveryHandler,
	pendingDeliveriesHandler PendingDeliveriesHandler,
	dispatchRunHandler DispatchRunHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		submitDeliveryHandler:    submitDeliveryHandler,
		cancelDeliveryHandler:    cancelDeliveryHandler,
		planDispatchHandler:      planDispatchHandler,
		quoteDeliveryHandler:     quoteDeliveryHandler,
		pendingDeliveriesHandler: pendingDeliveriesHandler,
		dispatchRunHandler:       dispatchRunHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// QuoteDelivery godoc
//
//	@Summary	Quote zone, fee and ETA for a destination
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		location	body		servers.Location	true	"Destination"
//	@Success	200			{object}	servers.Quote
//	@Failure	400			{object}	servers.Error
//	@Router		/quotes [post]
func (s *Server) QuoteDelivery(ctx echo.Context) error {
	destination, err := bindLocation(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewQuoteDeliveryQuery(destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	quote, err := s.quoteDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to quote delivery", err)
	}

	response := servers.Quote{
		Zone: servers.ZoneDecision{
			IsServiceable: quote.Zone.IsServiceable,
			DistanceKm:    quote.Zone.DistanceKm,
			Reason:        quote.Zone.Reason,
		},
	}
	if quote.Fee != nil {
		response.Fee = &servers.FeeQuote{
			BaseFee:     quote.Fee.BaseFee,
			DistanceFee: quote.Fee.DistanceFee,
			TotalFee:    quote.Fee.TotalFee,
		}
	}
	if quote.ETA != nil {
		response.Eta = &servers.EtaEstimate{
			EstimatedSeconds: quote.ETA.EstimatedSeconds,
			Source:           servers.EtaEstimateSource(quote.ETA.Source),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitDelivery godoc
//
//	@Summary	Submit a delivery request inside the service area
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		location	body		servers.Location	true	"Destination"
//	@Success	201			{object}	servers.DeliveryCreated
//	@Failure	400			{object}	servers.Error
//	@Failure	422			{object}	servers.Error
//	@Router		/deliveries [post]
func (s *Server) SubmitDelivery(ctx echo.Context) error {
	destination, err := bindLocation(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSubmitDeliveryRequestCommand(id, destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.submitDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{Id: id.Google()})
	case errors.Is(err, commands.ErrDestinationOutsideServiceArea):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return s.internalError(ctx, "Failed to submit delivery request", err)
	}
}

// GetPendingDeliveries godoc
//
//	@Summary	List pending delivery requests, oldest first
//	@Tags		deliveries
//	@Produce	json
//	@Success	200	{array}	servers.PendingDelivery
//	@Router		/deliveries/pending [get]
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	rows, err := s.pendingDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetPendingRequestsQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve pending deliveries", err)
	}

	response := make([]servers.PendingDelivery, len(rows))
	for i, row := range rows {
		response[i] = servers.PendingDelivery{
			Id:          row.ID.Google(),
			Location:    toLocation(row.Destination),
			SubmittedAt: row.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelDelivery godoc
//
//	@Summary	Cancel a pending delivery request
//	@Tags		deliveries
//	@Produce	json
//	@Param		requestId	path	string	true	"Delivery request id"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/deliveries/{requestId} [delete]
func (s *Server) CancelDelivery(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(requestId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryRequestCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Delivery request not found")
	case errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusConflict, "Delivery request is no longer pending")
	default:
		return s.internalError(ctx, "Failed to cancel delivery request", err)
	}
}

// PlanDispatchRun godoc
//
//	@Summary	Plan a dispatch run over every pending request
//	@Tags		dispatch
//	@Produce	json
//	@Success	201	{object}	servers.DispatchRun
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/dispatch-runs [post]
func (s *Server) PlanDispatchRun(ctx echo.Context) error {
	plan, err := s.planDispatchHandler.Handle(ctx.Request().Context(), commands.NewPlanDispatchCommand())
	switch {
	case err == nil:
		return ctx.JSON(http.StatusCreated, toDispatchRun(plan))
	case errors.Is(err, commands.ErrNoPendingRequests):
		return errorJSON(ctx, http.StatusNotFound, "No pending delivery requests")
	case errors.Is(err, ports.ErrRequestsChangedConcurrently):
		return errorJSON(ctx, http.StatusConflict, "Pending requests changed while planning, retry")
	default:
		return s.internalError(ctx, "Failed to plan dispatch run", err)
	}
}

// GetDispatchRun godoc
//
//	@Summary	Fetch a stored dispatch run
//	@Tags		dispatch
//	@Produce	json
//	@Param		runId	path		string	true	"Dispatch run id"	format(uuid)
//	@Success	200		{object}	servers.DispatchRun
//	@Failure	404		{object}	servers.Error
//	@Router		/dispatch-runs/{runId} [get]
func (s *Server) GetDispatchRun(ctx echo.Context, runId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(runId)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDispatchRunQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	run, err := s.dispatchRunHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "Dispatch run not found")
	}
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve dispatch run", err)
	}

	response := servers.DispatchRun{
		Id:        run.ID.Google(),
		CreatedAt: run.CreatedAt,
		Stops:     make([]servers.DispatchStop, len(run.Stops)),
	}
	for i, stop := range run.Stops {
		response.Stops[i] = servers.DispatchStop{
			Sequence:   stop.Sequence,
			RequestId:  stop.RequestID.Google(),
			Location:   toLocation(stop.Destination),
			DistanceKm: stop.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message,
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err)
	return errorJSON(ctx, http.StatusInternalServerError, message)
}

func bindLocation(ctx echo.Context) (kernel.Location, error) {
	var body servers.Location
	if err := ctx.Bind(&body); err != nil {
		return kernel.Location{}, errors.New("invalid request body")
	}
	return kernel.NewLocation(body.Latitude, body.Longitude)
}

func toLocation(l kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func toDispatchRun(plan dispatch.Plan) servers.DispatchRun {
	stops := plan.Stops()
	run := servers.DispatchRun{
		Id:        plan.ID().Google(),
		CreatedAt: plan.CreatedAt(),
		Stops:     make([]servers.DispatchStop, len(stops)),
	}
	for i, stop := range stops {
		run.Stops[i] = servers.DispatchStop{
			Sequence:   stop.Sequence(),
			RequestId:  stop.RequestID().Google(),
			Location:   toLocation(stop.Destination()),
			DistanceKm: stop.DistanceKm(),
		}
	}
	return run
}

func badRequest(ctx echo.Context, err error) error {
	return errorJSON(ctx, http.StatusBadRequest, err.Error())
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
