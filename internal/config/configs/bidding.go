package configs

// Bidding is the engine's economic configuration surface. Every threshold
// the pipeline consults lives here; none of them are hard-coded in the
// stages. Monetary values are in the portfolio's base currency.
type Bidding struct {
	// TargetROAS divides revenue-per-click into the maximum profitable CPC.
	// 1.0 means break-even; 2.0 demands £2 revenue per £1 spent.
	TargetROAS float64 `env:"TARGET_ROAS" envDefault:"1.0"`
	// LookbackDays is the booking/analytics aggregation window.
	LookbackDays int `env:"LOOKBACK_DAYS" envDefault:"90"`

	// Minimum sample sizes before real data is trusted over fallbacks.
	MinBookingSamples             int `env:"MIN_BOOKING_SAMPLES" envDefault:"3"`
	MinPortfolioCommissionSamples int `env:"MIN_PORTFOLIO_COMMISSION_SAMPLES" envDefault:"5"`
	MinSessions                   int `env:"MIN_SESSIONS" envDefault:"100"`

	// Fallback defaults used when samples are insufficient.
	DefaultAOV            float64 `env:"DEFAULT_AOV" envDefault:"120"`
	DefaultCommissionPct  float64 `env:"DEFAULT_COMMISSION_PCT" envDefault:"15"`
	DefaultConversionRate float64 `env:"DEFAULT_CONVERSION_RATE" envDefault:"0.02"`

	// GlobalDailyCap bounds the summed expected daily cost of selected
	// candidates across the whole portfolio.
	GlobalDailyCap float64 `env:"GLOBAL_DAILY_CAP" envDefault:"250"`
	// MinViableBid drops candidates whose capped bid is too small to win
	// any auction.
	MinViableBid      float64 `env:"MIN_VIABLE_BID" envDefault:"0.05"`
	MinCampaignBudget float64 `env:"MIN_CAMPAIGN_BUDGET" envDefault:"5"`
	MaxCampaignBudget float64 `env:"MAX_CAMPAIGN_BUDGET" envDefault:"100"`

	// AssumedCTR converts daily searches into expected clicks.
	AssumedCTR float64 `env:"ASSUMED_CTR" envDefault:"0.02"`

	// LowIntentTerms archive any keyword containing one as a whole word.
	LowIntentTerms []string `env:"LOW_INTENT_TERMS" envSeparator:"," envDefault:"free,gratis,complimentary,freebie,cheapest"`

	// ValidatorCallBudget caps inventory checks per run; past it the
	// validator accepts optimistically.
	ValidatorCallBudget int64 `env:"VALIDATOR_CALL_BUDGET" envDefault:"100"`
	// MinLandingProducts is the product count a landing page needs to
	// validate.
	MinLandingProducts int `env:"MIN_LANDING_PRODUCTS" envDefault:"3"`
	// SmallCatalogueThreshold routes keywords for thin catalogues straight
	// to the homepage.
	SmallCatalogueThreshold int `env:"SMALL_CATALOGUE_THRESHOLD" envDefault:"50"`

	// DefaultSiteID receives keywords no site profile matched.
	DefaultSiteID int64 `env:"DEFAULT_SITE_ID" envDefault:"1"`
	// Platforms lists the ad platforms a candidate is emitted for.
	Platforms []string `env:"PLATFORMS" envSeparator:"," envDefault:"google,microsoft"`
}
