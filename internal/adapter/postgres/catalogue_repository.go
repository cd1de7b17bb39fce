package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// CatalogueRepository implements port.CatalogueRepository using pgxpool.
type CatalogueRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogueRepository returns a new repository instance.
func NewCatalogueRepository(pool *pgxpool.Pool) *CatalogueRepository {
	return &CatalogueRepository{pool: pool}
}

// ActiveSites returns every active site and microsite with its match
// profile and routing configuration.
func (r *CatalogueRepository) ActiveSites(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, domain, kind, active, destinations, categories,
               search_terms, supplier_cities, supplier_categories,
               seed_keywords, product_count
        FROM sites
        WHERE active
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Site, error) {
		var s domain.Site
		err := row.Scan(&s.ID, &s.Name, &s.Domain, &s.Kind, &s.Active,
			&s.Destinations, &s.Categories, &s.SearchTerms,
			&s.SupplierCities, &s.SupplierCategories, &s.SeedKeywords,
			&s.ProductCount)
		return s, err
	})
}

// BookingAggregate aggregates confirmed/completed bookings for one site.
func (r *CatalogueRepository) BookingAggregate(ctx context.Context, siteID int64, since time.Time) (domain.BookingAggregate, error) {
	var agg domain.BookingAggregate
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(count(*), 0),
               COALESCE(avg(amount), 0),
               COALESCE(count(commission_pct), 0),
               COALESCE(avg(commission_pct), 0)
        FROM bookings
        WHERE site_id = $1
          AND status IN ('confirmed', 'completed')
          AND booked_at >= $2`, siteID, since).
		Scan(&agg.Samples, &agg.MeanValue, &agg.CommissionSamples, &agg.MeanCommissionPct)
	return agg, err
}

// PortfolioBookingAggregate aggregates bookings across every site.
func (r *CatalogueRepository) PortfolioBookingAggregate(ctx context.Context, since time.Time) (domain.BookingAggregate, error) {
	var agg domain.BookingAggregate
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(count(*), 0),
               COALESCE(avg(amount), 0),
               COALESCE(count(commission_pct), 0),
               COALESCE(avg(commission_pct), 0)
        FROM bookings
        WHERE status IN ('confirmed', 'completed')
          AND booked_at >= $1`, since).
		Scan(&agg.Samples, &agg.MeanValue, &agg.CommissionSamples, &agg.MeanCommissionPct)
	return agg, err
}

// TrafficAggregate sums analytics sessions and attributed bookings for one
// site.
func (r *CatalogueRepository) TrafficAggregate(ctx context.Context, siteID int64, since time.Time) (domain.TrafficAggregate, error) {
	var agg domain.TrafficAggregate
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(sessions), 0), COALESCE(sum(bookings), 0)
        FROM traffic_snapshots
        WHERE site_id = $1 AND day >= $2`, siteID, since).
		Scan(&agg.Sessions, &agg.Bookings)
	return agg, err
}

// CatalogueAveragePrice returns the mean active product price, 0 when the
// catalogue is empty.
func (r *CatalogueRepository) CatalogueAveragePrice(ctx context.Context) (float64, error) {
	var price float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(avg(price), 0) FROM products WHERE active`).Scan(&price)
	return price, err
}

// BiddableKeywords returns every keyword not yet archived.
func (r *CatalogueRepository) BiddableKeywords(ctx context.Context) ([]domain.CandidateKeyword, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, text, monthly_volume, estimated_cpc, intent, location,
               assigned_site_id, priority, status, created_at, updated_at
        FROM candidate_keywords
        WHERE status <> 'archived'
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CandidateKeyword, error) {
		var kw domain.CandidateKeyword
		err := row.Scan(&kw.ID, &kw.Text, &kw.MonthlyVolume, &kw.EstimatedCPC,
			&kw.Intent, &kw.Location, &kw.AssignedSiteID, &kw.Priority,
			&kw.Status, &kw.CreatedAt, &kw.UpdatedAt)
		return kw, err
	})
}

// ArchiveKeyword permanently removes a keyword from the biddable pool.
func (r *CatalogueRepository) ArchiveKeyword(ctx context.Context, id int64, reason string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE candidate_keywords
        SET status = 'archived', archive_reason = $2, updated_at = now()
        WHERE id = $1`, id, reason)
	return err
}

// AssignKeyword records the winning site and match score for a keyword.
func (r *CatalogueRepository) AssignKeyword(ctx context.Context, id int64, siteID int64, score float64) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE candidate_keywords
        SET assigned_site_id = $2, priority = $3, status = 'assigned',
            updated_at = now()
        WHERE id = $1`, id, siteID, score)
	return err
}

// SaveProfile upserts the profile for its site. Re-running on unchanged
// inputs overwrites with identical values.
func (r *CatalogueRepository) SaveProfile(ctx context.Context, p domain.SiteProfile) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO site_profiles
            (site_id, site_name, aov, commission_pct, conversion_rate,
             revenue_per_click, max_profitable_cpc, booking_samples,
             commission_samples, sessions, aov_source, commission_source,
             conversion_source, computed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (site_id) DO UPDATE SET
            site_name = EXCLUDED.site_name,
            aov = EXCLUDED.aov,
            commission_pct = EXCLUDED.commission_pct,
            conversion_rate = EXCLUDED.conversion_rate,
            revenue_per_click = EXCLUDED.revenue_per_click,
            max_profitable_cpc = EXCLUDED.max_profitable_cpc,
            booking_samples = EXCLUDED.booking_samples,
            commission_samples = EXCLUDED.commission_samples,
            sessions = EXCLUDED.sessions,
            aov_source = EXCLUDED.aov_source,
            commission_source = EXCLUDED.commission_source,
            conversion_source = EXCLUDED.conversion_source,
            computed_at = EXCLUDED.computed_at`,
		p.SiteID, p.SiteName, p.AOV, p.CommissionPct, p.ConversionRate,
		p.RevenuePerClick, p.MaxProfitableCPC, p.Quality.BookingSamples,
		p.Quality.CommissionSamples, p.Quality.Sessions, p.Quality.AOVSource,
		p.Quality.CommissionSource, p.Quality.ConversionSource, p.ComputedAt)
	return err
}

// Profiles returns the stored profile of every site, ordered by site id.
func (r *CatalogueRepository) Profiles(ctx context.Context) ([]domain.SiteProfile, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT site_id, site_name, aov, commission_pct, conversion_rate,
               revenue_per_click, max_profitable_cpc, booking_samples,
               commission_samples, sessions, aov_source, commission_source,
               conversion_source, computed_at
        FROM site_profiles
        ORDER BY site_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SiteProfile, error) {
		var p domain.SiteProfile
		err := row.Scan(&p.SiteID, &p.SiteName, &p.AOV, &p.CommissionPct,
			&p.ConversionRate, &p.RevenuePerClick, &p.MaxProfitableCPC,
			&p.Quality.BookingSamples, &p.Quality.CommissionSamples,
			&p.Quality.Sessions, &p.Quality.AOVSource,
			&p.Quality.CommissionSource, &p.Quality.ConversionSource,
			&p.ComputedAt)
		return p, err
	})
}

// PublishedPages returns the published routing pages of one site.
func (r *CatalogueRepository) PublishedPages(ctx context.Context, siteID int64) ([]domain.Page, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, site_id, type, title, path, location, category
        FROM pages
        WHERE site_id = $1 AND published
        ORDER BY id`, siteID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Page, error) {
		var p domain.Page
		err := row.Scan(&p.ID, &p.SiteID, &p.Type, &p.Title, &p.Path,
			&p.Location, &p.Category)
		return p, err
	})
}

// ActiveCollections returns the site's active collections.
func (r *CatalogueRepository) ActiveCollections(ctx context.Context, siteID int64) ([]domain.Collection, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, site_id, name, path, product_count, active_months
        FROM collections
        WHERE site_id = $1 AND active
        ORDER BY id`, siteID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Collection, error) {
		var (
			c      domain.Collection
			months []int32
		)
		err := row.Scan(&c.ID, &c.SiteID, &c.Name, &c.Path, &c.ProductCount, &months)
		for _, m := range months {
			c.ActiveMonths = append(c.ActiveMonths, int(m))
		}
		return c, err
	})
}

// SaveRunSummary persists the outcome of one engine run.
func (r *CatalogueRepository) SaveRunSummary(ctx context.Context, s port.RunSummary) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO engine_runs
            (run_id, mode, started_at, finished_at, keywords_archived,
             keywords_assigned, ai_evaluated, ai_auto_archived,
             profiles_computed, candidates_scored, selected, groups_emitted,
             budget_allocated, budget_remaining, validator_calls_used)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.RunID, s.Mode, s.StartedAt, s.FinishedAt, s.KeywordsArchived,
		s.KeywordsAssigned, s.AIEvaluated, s.AIAutoArchived,
		s.ProfilesComputed, s.CandidatesScored, s.Selected, s.GroupsEmitted,
		s.BudgetAllocated, s.BudgetRemaining, s.ValidatorCallsUsed)
	return err
}

// LatestRunSummary returns the most recent run, nil when none exists.
func (r *CatalogueRepository) LatestRunSummary(ctx context.Context) (*port.RunSummary, error) {
	var s port.RunSummary
	err := r.pool.QueryRow(ctx, `
        SELECT run_id, mode, started_at, finished_at, keywords_archived,
               keywords_assigned, ai_evaluated, ai_auto_archived,
               profiles_computed, candidates_scored, selected,
               groups_emitted, budget_allocated, budget_remaining,
               validator_calls_used
        FROM engine_runs
        ORDER BY started_at DESC
        LIMIT 1`).
		Scan(&s.RunID, &s.Mode, &s.StartedAt, &s.FinishedAt,
			&s.KeywordsArchived, &s.KeywordsAssigned, &s.AIEvaluated,
			&s.AIAutoArchived, &s.ProfilesComputed, &s.CandidatesScored,
			&s.Selected, &s.GroupsEmitted, &s.BudgetAllocated,
			&s.BudgetRemaining, &s.ValidatorCallsUsed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
