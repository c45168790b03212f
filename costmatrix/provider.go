// SPDX-License-Identifier: MIT

package costmatrix

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tourplan/waypoint"
)

// MaxDepartureContextLocations is the largest location count for which a
// departure time is forwarded to the provider. Traffic-aware matrices are
// billed per element, so larger requests go out without departure context.
const MaxDepartureContextLocations = 10

// StatusOK is the only response/element status treated as success.
const StatusOK = "OK"

// Request carries the travel context of a matrix request.
type Request struct {
	Mode TravelMode
	// DepartureTime is nil when no departure context should be sent.
	DepartureTime *time.Time
}

// Element is one from→to cell of a provider response.
type Element struct {
	Status   string
	Duration float64 // seconds
	Distance float64 // metres
}

// Row is one origin of a provider response.
type Row struct {
	Elements []Element
}

// Response is the full pairwise resource returned by a Provider.
type Response struct {
	Status  string
	Message string
	Rows    []Row
}

// Provider is the transport-cost collaborator: given an ordered list of
// locations and a travel context, it returns the full pairwise matrix
// resource (origins == destinations == locs) or an error.
type Provider interface {
	DistanceMatrix(ctx context.Context, locs []waypoint.Location, req Request) (*Response, error)
}

// ProviderError is the structured error payload of a non-OK response.
type ProviderError struct {
	Status  string
	Message string
}

// Error implements error.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %s (status=%s)", e.Message, e.Status)
}

// Unwrap lets errors.Is(err, ErrMatrixUnavailable) match provider payloads.
func (e *ProviderError) Unwrap() error { return ErrMatrixUnavailable }

// DepartureContext returns the request actually sent for n locations: the
// departure time survives only for Driving with n ≤ MaxDepartureContextLocations.
func DepartureContext(req Request, n int) Request {
	if req.DepartureTime == nil {
		return req
	}
	if req.Mode != Driving || n > MaxDepartureContextLocations {
		req.DepartureTime = nil
	}
	return req
}

// Build requests a full matrix for locs from p and converts it into a
// validated Matrix. Valid only for MinimizeTime and MinimizeDistance; the
// straight-line metric must use Geometric.
//
// Errors:
//   - ErrUnsupportedMetric for any other metric.
//   - ErrMatrixUnavailable (wrapped) on a nil provider, a transport error,
//     a nil response, a *ProviderError payload, or a response whose shape is
//     not len(locs)×len(locs).
//
// Element-level failures (status other than StatusOK) mark the pair as
// unreachable (+Inf in both grids).
func Build(ctx context.Context, p Provider, locs []waypoint.Location, metric Metric, req Request) (*Matrix, error) {
	if metric != MinimizeTime && metric != MinimizeDistance {
		return nil, fmt.Errorf("Build: metric %s: %w", metric, ErrUnsupportedMetric)
	}
	if p == nil {
		return nil, fmt.Errorf("Build: no provider: %w", ErrMatrixUnavailable)
	}
	n := len(locs)
	if n == 0 {
		return nil, fmt.Errorf("Build: %w", ErrDimensionMismatch)
	}

	req = DepartureContext(req, n)
	resp, err := p.DistanceMatrix(ctx, locs, req)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrMatrixUnavailable, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("Build: empty response: %w", ErrMatrixUnavailable)
	}
	if resp.Status != StatusOK {
		return nil, fmt.Errorf("Build: %w", &ProviderError{Status: resp.Status, Message: resp.Message})
	}

	m, err := fromResponse(resp, n)
	if err != nil {
		return nil, err
	}
	m.locs = append([]waypoint.Location(nil), locs...)
	m.mode = req.Mode
	return m, nil
}

// fromResponse copies an n×n response into a new matrix. Diagonal cells are
// forced to zero regardless of what the provider reported.
func fromResponse(resp *Response, n int) (*Matrix, error) {
	if len(resp.Rows) != n {
		return nil, fmt.Errorf("Build: %d rows for %d locations: %w", len(resp.Rows), n, ErrMatrixUnavailable)
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		el   Element
		inf  = math.Inf(1)
	)
	for i = 0; i < n; i++ {
		if len(resp.Rows[i].Elements) != n {
			return nil, fmt.Errorf("Build: row %d has %d elements for %d locations: %w",
				i, len(resp.Rows[i].Elements), n, ErrMatrixUnavailable)
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			el = resp.Rows[i].Elements[j]
			if el.Status != StatusOK {
				m.times[i*n+j] = inf
				m.dists[i*n+j] = inf
				continue
			}
			if err = m.Set(i, j, el.Duration, el.Distance); err != nil {
				return nil, fmt.Errorf("Build: %w: %w", ErrMatrixUnavailable, err)
			}
		}
	}
	return m, nil
}
