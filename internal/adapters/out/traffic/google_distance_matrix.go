// Package traffic queries the Google Distance Matrix API for traffic-aware
// driving durations.
package traffic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	DefaultTimeout = 10 * time.Second

	matrixPath = "/maps/api/distancematrix/json"
	statusOK   = "OK"
)

var (
	ErrAPIKeyIsEmpty = errors.New("google maps api key is empty")
	ErrRouteNotFound = errors.New("distance matrix returned no route")
	ErrRequestFailed = errors.New("distance matrix request failed")
)

var _ ports.TrafficService = (*GoogleDistanceMatrixClient)(nil)

type matrixResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Rows         []matrixRow `json:"rows"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status            string       `json:"status"`
	Duration          *matrixValue `json:"duration"`
	DurationInTraffic *matrixValue `json:"duration_in_traffic"`
}

type matrixValue struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// GoogleDistanceMatrixClient implements ports.TrafficService. It makes a
// single request per call and never retries.
type GoogleDistanceMatrixClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

type Option func(*GoogleDistanceMatrixClient)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *GoogleDistanceMatrixClient) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *GoogleDistanceMatrixClient) {
		c.httpClient = httpClient
	}
}

func NewGoogleDistanceMatrixClient(apiKey string, timeout time.Duration, opts ...Option) (*GoogleDistanceMatrixClient, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyIsEmpty
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &GoogleDistanceMatrixClient{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// DurationForRoute returns the driving time from origin to destination,
// preferring duration_in_traffic when Google supplies it.
func (c *GoogleDistanceMatrixClient) DurationForRoute(
	ctx context.Context,
	origin kernel.Location,
	destination kernel.Location,
) (time.Duration, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(origin, destination), nil)
	if err != nil {
		return 0, fmt.Errorf("build distance matrix request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode distance matrix response: %w", err)
	}

	return body.duration()
}

func (c *GoogleDistanceMatrixClient) endpoint(origin, destination kernel.Location) string {
	q := url.Values{}
	q.Set("origins", coordinates(origin))
	q.Set("destinations", coordinates(destination))
	q.Set("departure_time", "now")
	q.Set("key", c.apiKey)

	return c.baseURL + matrixPath + "?" + q.Encode()
}

func (r matrixResponse) duration() (time.Duration, error) {
	if r.Status != statusOK {
		if r.ErrorMessage != "" {
			return 0, fmt.Errorf("%w: status %s: %s", ErrRequestFailed, r.Status, r.ErrorMessage)
		}
		return 0, fmt.Errorf("%w: status %s", ErrRequestFailed, r.Status)
	}

	if len(r.Rows) == 0 || len(r.Rows[0].Elements) == 0 {
		return 0, ErrRouteNotFound
	}

	element := r.Rows[0].Elements[0]
	if element.Status != statusOK {
		return 0, fmt.Errorf("%w: element status %s", ErrRouteNotFound, element.Status)
	}

	value := element.DurationInTraffic
	if value == nil {
		value = element.Duration
	}
	if value == nil {
		return 0, fmt.Errorf("%w: element has no duration", ErrRouteNotFound)
	}

	return time.Duration(value.Value * float64(time.Second)), nil
}

func coordinates(l kernel.Location) string {
	return strconv.FormatFloat(l.Latitude(), 'f', -1, 64) + "," + strconv.FormatFloat(l.Longitude(), 'f', -1, 64)
}
