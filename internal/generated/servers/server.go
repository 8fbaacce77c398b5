// Package servers holds the echo bindings for the API described in openapi.yml:
// the request and response types, ServerInterface, parameter binding and route
// registration. The layout follows oapi-codegen's echo output, but the file is
// maintained by hand; routes and types must be kept in step with openapi.yml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for EtaEstimateSource.
const (
	Fallback EtaEstimateSource = "fallback"
	Live     EtaEstimateSource = "live"
)

// DeliveryCreated defines model for DeliveryCreated.
type DeliveryCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// DispatchRun defines model for DispatchRun.
type DispatchRun struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Stops     []DispatchStop     `json:"stops"`
}

// DispatchStop defines model for DispatchStop.
type DispatchStop struct {
	DistanceKm float64            `json:"distanceKm"`
	Location   Location           `json:"location"`
	RequestId  openapi_types.UUID `json:"requestId"`
	Sequence   int                `json:"sequence"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EtaEstimate defines model for EtaEstimate.
type EtaEstimate struct {
	EstimatedSeconds float64           `json:"estimatedSeconds"`
	Source           EtaEstimateSource `json:"source"`
}

// EtaEstimateSource defines model for EtaEstimate.Source.
type EtaEstimateSource string

// FeeQuote defines model for FeeQuote.
type FeeQuote struct {
	BaseFee     int `json:"baseFee"`
	DistanceFee int `json:"distanceFee"`
	TotalFee    int `json:"totalFee"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PendingDelivery defines model for PendingDelivery.
type PendingDelivery struct {
	Id          openapi_types.UUID `json:"id"`
	Location    Location           `json:"location"`
	SubmittedAt time.Time          `json:"submittedAt"`
}

// Quote defines model for Quote.
type Quote struct {
	Eta  *EtaEstimate `json:"eta,omitempty"`
	Fee  *FeeQuote    `json:"fee,omitempty"`
	Zone ZoneDecision `json:"zone"`
}

// ZoneDecision defines model for ZoneDecision.
type ZoneDecision struct {
	DistanceKm    float64 `json:"distanceKm"`
	IsServiceable bool    `json:"isServiceable"`
	Reason        string  `json:"reason"`
}

// SubmitDeliveryJSONRequestBody defines body for SubmitDelivery for application/json ContentType.
type SubmitDeliveryJSONRequestBody = Location

// QuoteDeliveryJSONRequestBody defines body for QuoteDelivery for application/json ContentType.
type QuoteDeliveryJSONRequestBody = Location

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Submit a delivery request inside the service area
	// (POST /api/v1/deliveries)
	SubmitDelivery(ctx echo.Context) error
	// List pending delivery requests, oldest first
	// (GET /api/v1/deliveries/pending)
	GetPendingDeliveries(ctx echo.Context) error
	// Cancel a pending delivery request
	// (DELETE /api/v1/deliveries/{requestId})
	CancelDelivery(ctx echo.Context, requestId openapi_types.UUID) error
	// Plan a dispatch run over every pending request
	// (POST /api/v1/dispatch-runs)
	PlanDispatchRun(ctx echo.Context) error
	// Fetch a stored dispatch run
	// (GET /api/v1/dispatch-runs/{runId})
	GetDispatchRun(ctx echo.Context, runId openapi_types.UUID) error
	// Quote zone, fee and ETA for a destination
	// (POST /api/v1/quotes)
	QuoteDelivery(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// SubmitDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitDelivery(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SubmitDelivery(ctx)
	return err
}

// GetPendingDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) GetPendingDeliveries(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPendingDeliveries(ctx)
	return err
}

// CancelDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CancelDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelDelivery(ctx, requestId)
	return err
}

// PlanDispatchRun converts echo context to params.
func (w *ServerInterfaceWrapper) PlanDispatchRun(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlanDispatchRun(ctx)
	return err
}

// GetDispatchRun converts echo context to params.
func (w *ServerInterfaceWrapper) GetDispatchRun(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "runId" -------------
	var runId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "runId", ctx.Param("runId"), &runId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter runId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDispatchRun(ctx, runId)
	return err
}

// QuoteDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteDelivery(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.QuoteDelivery(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/deliveries", wrapper.SubmitDelivery)
	router.GET(baseURL+"/api/v1/deliveries/pending", wrapper.GetPendingDeliveries)
	router.DELETE(baseURL+"/api/v1/deliveries/:requestId", wrapper.CancelDelivery)
	router.POST(baseURL+"/api/v1/dispatch-runs", wrapper.PlanDispatchRun)
	router.GET(baseURL+"/api/v1/dispatch-runs/:runId", wrapper.GetDispatchRun)
	router.POST(baseURL+"/api/v1/quotes", wrapper.QuoteDelivery)

}

//go:embed openapi.yml
var swaggerSpec []byte

// GetSwagger parses the embedded openapi.yml.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
