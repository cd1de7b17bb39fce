package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// profileWorkers bounds the fan-out of per-target profile computation.
const profileWorkers = 4

// ProfitabilityCalculator computes the financial profile of each site and
// microsite from booking and analytics aggregates, falling back through
// portfolio, catalogue and configured-default tiers when real data is too
// thin to trust. It always produces a complete profile or none at all.
type ProfitabilityCalculator struct {
	repo   port.CatalogueRepository
	cfg    configs.Bidding
	logger *slog.Logger
}

// NewProfitabilityCalculator returns a calculator reading aggregates from
// repo under the thresholds in cfg.
func NewProfitabilityCalculator(repo port.CatalogueRepository, cfg configs.Bidding, logger *slog.Logger) *ProfitabilityCalculator {
	return &ProfitabilityCalculator{repo: repo, cfg: cfg, logger: logger}
}

// ComputeAll computes a profile for every given site, main sites first so
// sorted output is stable for reporting. Per-target failures are logged and
// the target skipped; callers must tolerate partial coverage. Targets are
// processed concurrently under a small worker limit.
func (c *ProfitabilityCalculator) ComputeAll(ctx context.Context, sites []domain.Site) (map[int64]domain.SiteProfile, error) {
	since := time.Now().AddDate(0, 0, -c.cfg.LookbackDays)

	// The portfolio pool and catalogue price are shared by every microsite
	// profile, so read them once up front. Failures degrade to defaults.
	portfolio, err := c.repo.PortfolioBookingAggregate(ctx, since)
	if err != nil {
		c.logger.Warn("portfolio booking aggregate unavailable", slog.Any("error", err))
		portfolio = domain.BookingAggregate{}
	}
	cataloguePrice, err := c.repo.CatalogueAveragePrice(ctx)
	if err != nil {
		c.logger.Warn("catalogue average price unavailable", slog.Any("error", err))
		cataloguePrice = 0
	}

	var (
		mu       sync.Mutex
		profiles = make(map[int64]domain.SiteProfile, len(sites))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(profileWorkers)
	for _, site := range sites {
		site := site
		g.Go(func() error {
			p, err := c.Compute(gctx, site, since, portfolio, cataloguePrice)
			if err != nil {
				// Missing data for one target never fails the run.
				c.logger.Warn("profile skipped",
					slog.Int64("site_id", site.ID),
					slog.String("site", site.Name),
					slog.Any("error", err))
				return nil
			}
			mu.Lock()
			profiles[site.ID] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Compute builds one complete profile. The microsite variant borrows the
// portfolio booking pool for AOV and commission (microsites take no bookings
// of their own) but uses the microsite's own session data when sufficient.
func (c *ProfitabilityCalculator) Compute(ctx context.Context, site domain.Site, since time.Time, portfolio domain.BookingAggregate, cataloguePrice float64) (domain.SiteProfile, error) {
	bookings := portfolio
	if !site.IsMicrosite() {
		var err error
		bookings, err = c.repo.BookingAggregate(ctx, site.ID, since)
		if err != nil {
			return domain.SiteProfile{}, err
		}
	}
	traffic, err := c.repo.TrafficAggregate(ctx, site.ID, since)
	if err != nil {
		return domain.SiteProfile{}, err
	}

	q := domain.DataQuality{
		BookingSamples:    bookings.Samples,
		CommissionSamples: bookings.CommissionSamples,
		Sessions:          traffic.Sessions,
	}

	aov := c.cfg.DefaultAOV
	q.AOVSource = domain.SourceDefault
	switch {
	case bookings.Samples >= c.cfg.MinBookingSamples && bookings.MeanValue > 0:
		aov = bookings.MeanValue
		q.AOVSource = domain.SourceReal
		if site.IsMicrosite() {
			q.AOVSource = domain.SourcePortfolio
		}
	case cataloguePrice > 0:
		aov = cataloguePrice
		q.AOVSource = domain.SourceCatalogue
	}

	commission := c.cfg.DefaultCommissionPct
	q.CommissionSource = domain.SourceDefault
	switch {
	case bookings.CommissionSamples >= c.cfg.MinBookingSamples && bookings.MeanCommissionPct > 0:
		commission = bookings.MeanCommissionPct
		q.CommissionSource = domain.SourceReal
		if site.IsMicrosite() {
			q.CommissionSource = domain.SourcePortfolio
		}
	case portfolio.CommissionSamples >= c.cfg.MinPortfolioCommissionSamples && portfolio.MeanCommissionPct > 0:
		commission = portfolio.MeanCommissionPct
		q.CommissionSource = domain.SourcePortfolio
	}

	cvr := c.cfg.DefaultConversionRate
	q.ConversionSource = domain.SourceDefault
	if traffic.Sessions >= c.cfg.MinSessions && traffic.Bookings > 0 {
		cvr = float64(traffic.Bookings) / float64(traffic.Sessions)
		if cvr > 1 {
			cvr = 1
		}
		q.ConversionSource = domain.SourceReal
	}

	rpc := aov * cvr * (commission / 100)
	return domain.SiteProfile{
		SiteID:           site.ID,
		SiteName:         site.Name,
		AOV:              aov,
		CommissionPct:    commission,
		ConversionRate:   cvr,
		RevenuePerClick:  rpc,
		MaxProfitableCPC: rpc / c.cfg.TargetROAS,
		Quality:          q,
		ComputedAt:       time.Now().UTC(),
	}, nil
}

// sortedProfiles returns the map's profiles ordered by site id for stable
// persistence and reporting.
func sortedProfiles(m map[int64]domain.SiteProfile) []domain.SiteProfile {
	out := make([]domain.SiteProfile, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SiteID < out[j].SiteID })
	return out
}
