// Package service orchestrates comparisons: it fetches both countries'
// records concurrently, shields the pure domain core from transport
// failures, and coalesces duplicate in-flight requests.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/econlens/country-compare/internal/domain"
	"github.com/econlens/country-compare/internal/observability"
)

// readinessTTL caches a successful upstream probe so /readyz polling doesn't
// burn API quota.
const readinessTTL = 30 * time.Second

// flightTimeout bounds one shared fetch-and-compare flight. The flight is
// detached from any single caller's context, so it needs its own deadline.
const flightTimeout = 15 * time.Second

// Comparer runs the two-country comparison pipeline.
type Comparer struct {
	source  domain.IndicatorSource
	logger  *slog.Logger
	metrics *observability.Metrics
	opts    domain.Options
	clock   clockwork.Clock

	// group coalesces concurrent requests for the same country pair onto
	// one flight. The core is stateless and safe under any concurrency;
	// this only avoids duplicate upstream fetches.
	group singleflight.Group

	// probeCountry is fetched to answer readiness checks.
	probeCountry string
	mu           sync.Mutex
	readyUntil   time.Time
}

// New creates a Comparer. Pass nil for clock to use real time.
func New(source domain.IndicatorSource, logger *slog.Logger, metrics *observability.Metrics, opts domain.Options, probeCountry string, clock clockwork.Clock) *Comparer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Comparer{
		source:       source,
		logger:       logger,
		metrics:      metrics,
		opts:         opts,
		clock:        clock,
		probeCountry: probeCountry,
	}
}

// Compare fetches both countries concurrently and builds the comparison
// rows. Fetch failures degrade to "N/A" cells; the only error returned is
// context cancellation. Concurrent calls for the same pair share one flight
// (and therefore one result, including its ID).
func (c *Comparer) Compare(ctx context.Context, countryA, countryB string) (domain.Comparison, error) {
	key := flightKey(countryA, countryB)
	v, err, _ := c.group.Do(key, func() (any, error) {
		// The flight is shared by every coalesced caller, so it must not
		// die with whichever caller happened to arrive first. Detach from
		// the caller's cancellation and bound the work with our own
		// deadline instead.
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()
		return c.run(flightCtx, countryA, countryB), nil
	})
	if err != nil {
		return domain.Comparison{}, err
	}
	// Each caller answers for its own context only.
	if err := ctx.Err(); err != nil {
		return domain.Comparison{}, err
	}
	return v.(domain.Comparison), nil
}

func (c *Comparer) run(ctx context.Context, countryA, countryB string) domain.Comparison {
	c.metrics.ComparisonsInFlight.Inc()
	defer c.metrics.ComparisonsInFlight.Dec()
	start := time.Now()

	// The two fetches are independent and unordered; wait for both before
	// invoking the core.
	var recordsA, recordsB []domain.RawIndicatorRecord
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		recordsA = c.fetch(ctx, countryA)
	}()
	go func() {
		defer wg.Done()
		recordsB = c.fetch(ctx, countryB)
	}()
	wg.Wait()

	cmp := domain.BuildComparison(countryA, countryB, recordsA, recordsB, c.opts)

	for _, row := range cmp.Rows {
		if !row.A.Available() {
			c.metrics.IndicatorUnavailable.WithLabelValues(row.Indicator).Inc()
		}
		if !row.B.Available() {
			c.metrics.IndicatorUnavailable.WithLabelValues(row.Indicator).Inc()
		}
	}
	c.metrics.ComparisonsTotal.Inc()
	c.metrics.ComparisonDuration.Observe(time.Since(start).Seconds())

	c.logger.Info("comparison built",
		"comparison_id", cmp.ID,
		"country_a", countryA,
		"country_b", countryB,
		"duration", time.Since(start),
	)
	return cmp
}

// fetch translates every upstream failure into "no records for this
// country"; the core has no distinct path for transport errors versus a
// missing indicator.
func (c *Comparer) fetch(ctx context.Context, country string) []domain.RawIndicatorRecord {
	records, err := c.source.FetchIndicators(ctx, country)
	if err != nil {
		c.logger.Warn("indicator fetch failed, treating as no records",
			"country", country,
			"error", err,
		)
		return nil
	}
	return records
}

// CheckReadiness reports whether the upstream source is reachable. A
// successful probe is cached for a short TTL.
func (c *Comparer) CheckReadiness(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clock.Now().Before(c.readyUntil) {
		return nil
	}

	records, err := c.source.FetchIndicators(ctx, c.probeCountry)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("upstream returned no records for probe country")
	}

	c.readyUntil = c.clock.Now().Add(readinessTTL)
	return nil
}

func flightKey(a, b string) string {
	return strings.ToLower(strings.TrimSpace(a)) + "|" + strings.ToLower(strings.TrimSpace(b))
}
