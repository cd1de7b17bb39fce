package domain

// Platform is a supported ad platform. The engine emits one candidate per
// platform per keyword; the deployment collaborator owns the actual
// platform APIs.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformMicrosoft Platform = "microsoft"
)

// CampaignCandidate is one keyword matched to one site or microsite on one
// platform, with its expected economics and landing page. Candidates are
// ephemeral: produced by the scorer and consumed by the allocator and
// grouper within a single run.
type CampaignCandidate struct {
	Keyword  CandidateKeyword
	SiteID   int64
	SiteName string
	Platform Platform

	EstimatedCPC         float64
	MaxBid               float64
	ExpectedDailyClicks  float64
	ExpectedDailyCost    float64
	ExpectedDailyRevenue float64

	// Score is the 0-100 opportunity score, rounded and clamped.
	Score int

	Landing     LandingPageTarget
	Attribution map[string]string

	// MicrositeMatch is true when the candidate was routed to a microsite
	// instead of the keyword's assigned main site.
	MicrositeMatch bool
}

// CampaignGroup is the deployable unit: every candidate sharing one
// (site-or-microsite id, platform, landing-page path) triple. MaxBid is the
// maximum of member bids and acts as the group's bid ceiling.
type CampaignGroup struct {
	SiteID      int64
	SiteName    string
	Platform    Platform
	LandingPath string
	LandingURL  string

	Keywords          []string
	MaxBid            float64
	TotalDailyCost    float64
	TotalDailyRevenue float64
	MeanScore         float64

	Members []CampaignCandidate
}
