package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	"destinos/internal/domain/service"

	"github.com/pkg/errors"
)

// SourceRNT labels metrics for the open-data API.
const SourceRNT = "rnt"

// rntProvider fetches the registry from the Socrata open-data endpoint on every call.
type rntProvider struct {
	baseURL      string
	datasetLimit int
	departments  []string
	httpClient   *http.Client
	metrics      service.EngineMetrics
	logger       *slog.Logger
}

// RNTOptions configures the open-data provider.
type RNTOptions struct {
	BaseURL      string
	DatasetLimit int
	Departments  []string
	Timeout      time.Duration
}

// NewRNTProvider creates a provider reading the registry resource at opts.BaseURL.
func NewRNTProvider(opts RNTOptions, metrics service.EngineMetrics, logger *slog.Logger) (service.CatalogProvider, error) {
	if _, err := url.ParseRequestURI(opts.BaseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog base URL %q", opts.BaseURL)
	}
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &rntProvider{
		baseURL:      opts.BaseURL,
		datasetLimit: opts.DatasetLimit,
		departments:  opts.Departments,
		httpClient:   &http.Client{Timeout: opts.Timeout},
		metrics:      metrics,
		logger:       logger,
	}, nil
}

func (p *rntProvider) ListDestinations(ctx context.Context, filter service.RegionFilter) ([]*entity.Destination, error) {
	destinations, err := p.fetch(ctx)
	p.metrics.IncCatalogFetch(SourceRNT, err)
	if err != nil {
		return nil, err
	}

	filtered := applyFilter(destinations, p.departments, filter)
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Catalog fetched",
		slog.String("source", SourceRNT),
		slog.Int("records", len(destinations)),
		slog.Int("kept", len(filtered)),
	)

	return filtered, nil
}

func (p *rntProvider) fetch(ctx context.Context) ([]*entity.Destination, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if p.datasetLimit > 0 {
		q := u.Query()
		q.Set("$limit", strconv.Itoa(p.datasetLimit))
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("catalog returned non-success status: %d", resp.StatusCode)
	}

	return decodeRecords(resp.Body)
}
