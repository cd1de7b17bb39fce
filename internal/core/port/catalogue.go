package port

import (
	"context"
	"errors"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// ErrMissingProfile is returned when no financial profile can be computed
// for a target. It is non-fatal: the target is excluded from scoring and
// the run continues.
var ErrMissingProfile = errors.New("no computable profile for target")

// CatalogueRepository is the outbound port to the portfolio's data store.
// Implementations return (zero, nil) style results for not-found lookups
// and must be safe for concurrent use: the profitability stage fans out
// per-target reads.
type CatalogueRepository interface {
	// ActiveSites returns every active site and microsite with its full
	// configuration. A failure here is the one run-fatal error of the
	// engine.
	ActiveSites(ctx context.Context) ([]domain.Site, error)

	// BookingAggregate aggregates confirmed/completed bookings for one
	// target since the given time.
	BookingAggregate(ctx context.Context, siteID int64, since time.Time) (domain.BookingAggregate, error)
	// PortfolioBookingAggregate aggregates bookings across the whole
	// portfolio since the given time. Microsite profiles borrow from it.
	PortfolioBookingAggregate(ctx context.Context, since time.Time) (domain.BookingAggregate, error)
	// TrafficAggregate aggregates analytics sessions and attributed
	// bookings for one target since the given time.
	TrafficAggregate(ctx context.Context, siteID int64, since time.Time) (domain.TrafficAggregate, error)
	// CatalogueAveragePrice returns the catalogue-wide average product
	// price, the first AOV fallback tier.
	CatalogueAveragePrice(ctx context.Context) (float64, error)

	// BiddableKeywords returns every keyword still in the biddable pool
	// (candidate or assigned, never archived).
	BiddableKeywords(ctx context.Context) ([]domain.CandidateKeyword, error)
	// ArchiveKeyword permanently removes a keyword from the biddable pool.
	ArchiveKeyword(ctx context.Context, id int64, reason string) error
	// AssignKeyword records the winning site and match score for a keyword.
	AssignKeyword(ctx context.Context, id int64, siteID int64, score float64) error

	// SaveProfile upserts a computed profile. The profitability stage is
	// idempotent: re-running on unchanged inputs overwrites with identical
	// values.
	SaveProfile(ctx context.Context, p domain.SiteProfile) error
	// Profiles returns the most recently computed profile per target.
	Profiles(ctx context.Context) ([]domain.SiteProfile, error)

	// PublishedPages returns the published pages of one site usable as
	// routing targets (blog, destination, category).
	PublishedPages(ctx context.Context, siteID int64) ([]domain.Page, error)
	// ActiveCollections returns the site's active curated collections.
	ActiveCollections(ctx context.Context, siteID int64) ([]domain.Collection, error)

	// SaveRunSummary persists the outcome of one engine run.
	SaveRunSummary(ctx context.Context, s RunSummary) error
	// LatestRunSummary returns the most recent run summary, or nil when no
	// run has been recorded.
	LatestRunSummary(ctx context.Context) (*RunSummary, error)
}
