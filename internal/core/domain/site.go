package domain

import "time"

// SiteKind distinguishes the portfolio's main booking sites from the two
// microsite flavours. Supplier microsites are built around a single
// supplier's inventory and can only filter by cities or categories that
// supplier owns. Opportunity microsites are niche sites seeded from a
// keyword cluster and share the main sites' free-text discovery API.
type SiteKind string

const (
	SiteMain                 SiteKind = "main"
	SiteSupplierMicrosite    SiteKind = "supplier_microsite"
	SiteOpportunityMicrosite SiteKind = "opportunity_microsite"
)

// Site is a main site or microsite as read from the catalogue. The match
// profile fields (Destinations, Categories, SearchTerms, Name) drive keyword
// assignment; the supplier and opportunity fields drive landing-page routing
// and microsite preference in the scorer.
type Site struct {
	ID     int64
	Name   string
	Domain string
	Kind   SiteKind
	Active bool

	// Match profile for keyword assignment.
	Destinations []string
	Categories   []string
	SearchTerms  []string

	// Supplier microsites: the cities and categories the supplier's product
	// API can filter by. Free-text queries are not supported.
	SupplierCities     []string
	SupplierCategories []string

	// Opportunity microsites: the keyword cluster the site was built for.
	SeedKeywords []string

	// ProductCount is the known catalogue size, zero when unknown.
	ProductCount int
}

// IsMicrosite reports whether the site is either microsite flavour.
func (s Site) IsMicrosite() bool {
	return s.Kind == SiteSupplierMicrosite || s.Kind == SiteOpportunityMicrosite
}

// MetricSource records which fallback tier produced a profile metric.
type MetricSource string

const (
	SourceReal      MetricSource = "real"      // enough of the target's own data
	SourcePortfolio MetricSource = "portfolio" // borrowed from the portfolio-wide pool
	SourceCatalogue MetricSource = "catalogue" // catalogue-wide average price
	SourceDefault   MetricSource = "default"   // configured default
)

// DataQuality records the sample sizes seen and the fallback tier used for
// each metric of a profile, for auditability of the financial model.
type DataQuality struct {
	BookingSamples    int
	CommissionSamples int
	Sessions          int
	AOVSource         MetricSource
	CommissionSource  MetricSource
	ConversionSource  MetricSource
}

// SiteProfile is the financial profile of one site or microsite, recomputed
// once per engine run and read-only thereafter. Amounts are in the
// portfolio's base currency; CommissionPct is a percentage (20 means 20%),
// ConversionRate a fraction in (0,1].
type SiteProfile struct {
	SiteID           int64
	SiteName         string
	AOV              float64
	CommissionPct    float64
	ConversionRate   float64
	RevenuePerClick  float64
	MaxProfitableCPC float64
	Quality          DataQuality
	ComputedAt       time.Time
}

// BookingAggregate summarises confirmed/completed bookings for one target or
// for the whole portfolio over a lookback window.
type BookingAggregate struct {
	Samples           int
	MeanValue         float64
	CommissionSamples int
	MeanCommissionPct float64
}

// TrafficAggregate summarises analytics sessions and the bookings attributed
// to them for one target over a lookback window.
type TrafficAggregate struct {
	Sessions int
	Bookings int
}
