package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port/mocks"
)

func newTestScorer(repo *mocks.MockCatalogueRepository) *OpportunityScorer {
	cfg := testBiddingConfig()
	return NewOpportunityScorer(repo, NewLandingPageRouter(DefaultSignalTables(), cfg), cfg, testLogger())
}

// TestScoreAllEmitsPerPlatform checks one surviving keyword yields one
// candidate per configured platform with identical economics and the site's
// attribution parameters.
func TestScoreAllEmitsPerPlatform(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().PublishedPages(mock.Anything, int64(1)).Return(nil, nil).Once()
	repo.EXPECT().ActiveCollections(mock.Anything, int64(1)).Return(nil, nil).Once()

	siteID := int64(1)
	sites := []domain.Site{{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain}}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 7.5, MaxProfitableCPC: 7.5},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "citydays", Intent: domain.IntentNavigational, MonthlyVolume: 2000, EstimatedCPC: 0.20, AssignedSiteID: &siteID},
	}

	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, skipValidator())
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	platforms := map[domain.Platform]bool{}
	for _, c := range out {
		platforms[c.Platform] = true
		if !approx(c.MaxBid, 0.24) {
			t.Fatalf("expected max bid 0.24 (cpc x headroom), got %v", c.MaxBid)
		}
		if c.Landing.Type != domain.PageHomepage {
			t.Fatalf("navigational keyword must land on homepage, got %s", c.Landing.Type)
		}
		if c.Attribution["utm_medium"] != "cpc" || c.Attribution["utm_campaign"] != "citydays" ||
			c.Attribution["utm_term"] != "citydays" || c.Attribution["clid"] == "" {
			t.Fatalf("bad attribution: %+v", c.Attribution)
		}
		if c.Attribution["utm_source"] != string(c.Platform) {
			t.Fatalf("utm_source must match platform: %+v", c.Attribution)
		}
	}
	if !platforms[domain.PlatformGoogle] || !platforms[domain.PlatformMicrosoft] {
		t.Fatalf("expected one candidate per platform, got %v", platforms)
	}
}

// TestScoreAllBidCappedByProfitability checks the bid ceiling is the lower
// of the profitability ceiling and 1.2x the estimated CPC.
func TestScoreAllBidCappedByProfitability(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().PublishedPages(mock.Anything, int64(1)).Return(nil, nil).Once()
	repo.EXPECT().ActiveCollections(mock.Anything, int64(1)).Return(nil, nil).Once()

	siteID := int64(1)
	sites := []domain.Site{{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain}}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 1.0, MaxProfitableCPC: 1.0},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "citydays expensive", Intent: domain.IntentNavigational, MonthlyVolume: 1000, EstimatedCPC: 2.0, AssignedSiteID: &siteID},
		{ID: 2, Text: "citydays cheap term", Intent: domain.IntentNavigational, MonthlyVolume: 1000, EstimatedCPC: 0.50, AssignedSiteID: &siteID},
	}

	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, skipValidator())
	bids := map[int64]float64{}
	for _, c := range out {
		bids[c.Keyword.ID] = c.MaxBid
	}
	if !approx(bids[1], 1.0) {
		t.Fatalf("expected profitability-capped bid 1.0, got %v", bids[1])
	}
	if !approx(bids[2], 0.60) {
		t.Fatalf("expected headroom-capped bid 0.6, got %v", bids[2])
	}
}

// TestScoreAllGates checks the silent drops: zero CPC, no assignment,
// unknown site, missing profile, sub-viable bid.
func TestScoreAllGates(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	one, two, nine := int64(1), int64(2), int64(9)
	sites := []domain.Site{
		{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain},
		{ID: 2, Name: "Riviera Trips", Domain: "rivieratrips.example.com", Kind: domain.SiteMain},
	}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 0.01, MaxProfitableCPC: 0.01},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "no cpc data", EstimatedCPC: 0, AssignedSiteID: &one},
		{ID: 2, Text: "never assigned", EstimatedCPC: 1.0},
		{ID: 3, Text: "assigned to a ghost", EstimatedCPC: 1.0, AssignedSiteID: &nine},
		{ID: 4, Text: "site without profile", EstimatedCPC: 1.0, AssignedSiteID: &two},
		{ID: 5, Text: "unviable bid", EstimatedCPC: 1.0, AssignedSiteID: &one},
	}

	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, skipValidator())
	if len(out) != 0 {
		t.Fatalf("expected all keywords gated out, got %d candidates", len(out))
	}
}

// TestScoreAllPrefersMatchingMicrosite checks a keyword matching an
// opportunity microsite's seed cluster is routed there instead of its
// assigned main site, and scores the microsite bonus.
func TestScoreAllPrefersMatchingMicrosite(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().PublishedPages(mock.Anything, int64(4)).Return(nil, nil).Once()
	repo.EXPECT().ActiveCollections(mock.Anything, int64(4)).Return(nil, nil).Once()

	one := int64(1)
	sites := []domain.Site{
		{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain},
		{
			ID: 4, Name: "Ghost Walks UK", Domain: "ghostwalks.example.com",
			Kind:         domain.SiteOpportunityMicrosite,
			SeedKeywords: []string{"ghost walk", "ghost tour london"},
			ProductCount: 60,
		},
	}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 2.0, MaxProfitableCPC: 2.0},
		4: {SiteID: 4, RevenuePerClick: 2.0, MaxProfitableCPC: 2.0},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "ghost tour london", Intent: domain.IntentCommercial, Location: "london", MonthlyVolume: 4000, EstimatedCPC: 0.70, AssignedSiteID: &one},
	}

	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, skipValidator())
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	for _, c := range out {
		if c.SiteID != 4 || !c.MicrositeMatch {
			t.Fatalf("expected microsite preference, got %+v", c)
		}
	}
}

// TestScoreAllIgnoresUnprofiledMicrosite checks a microsite without a
// computed profile never wins the preference.
func TestScoreAllIgnoresUnprofiledMicrosite(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().PublishedPages(mock.Anything, int64(1)).Return(nil, nil).Once()
	repo.EXPECT().ActiveCollections(mock.Anything, int64(1)).Return(nil, nil).Once()

	one := int64(1)
	sites := []domain.Site{
		{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain},
		{
			ID: 4, Name: "Ghost Walks UK", Domain: "ghostwalks.example.com",
			Kind:         domain.SiteOpportunityMicrosite,
			SeedKeywords: []string{"ghost tour london"},
			ProductCount: 60,
		},
	}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 2.0, MaxProfitableCPC: 2.0},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "ghost tour london", Intent: domain.IntentCommercial, Location: "london", MonthlyVolume: 4000, EstimatedCPC: 0.70, AssignedSiteID: &one},
	}

	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, skipValidator())
	for _, c := range out {
		if c.SiteID != 1 || c.MicrositeMatch {
			t.Fatalf("unprofiled microsite must not be preferred: %+v", c)
		}
	}
}

// TestScoreAllDropsUnvalidatedFilteredListing checks the post-filter: a
// filtered listing that failed validation on a discovery site is dropped.
func TestScoreAllDropsUnvalidatedFilteredListing(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().PublishedPages(mock.Anything, int64(1)).Return(nil, nil).Once()
	repo.EXPECT().ActiveCollections(mock.Anything, int64(1)).Return(nil, nil).Once()
	checker := mocks.NewMockInventoryChecker(t)
	checker.EXPECT().CheckInventory(mock.Anything, mock.Anything).
		Return(domain.InventoryResult{Valid: false}, nil)

	one := int64(1)
	sites := []domain.Site{{ID: 1, Name: "CityDays", Domain: "citydays.example.com", Kind: domain.SiteMain}}
	profiles := map[int64]domain.SiteProfile{
		1: {SiteID: 1, RevenuePerClick: 2.0, MaxProfitableCPC: 2.0},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "ghost tour london", Intent: domain.IntentCommercial, Location: "london", MonthlyVolume: 4000, EstimatedCPC: 0.70, AssignedSiteID: &one},
	}

	val := NewRunValidator(checker, 100, 3, testLogger())
	out := newTestScorer(repo).ScoreAll(context.Background(), keywords, sites, profiles, val)
	if len(out) != 0 {
		t.Fatalf("expected unvalidated filtered listing dropped, got %d candidates", len(out))
	}
}

// TestOpportunityScoreComposition pins the bonus arithmetic and the 0-100
// clamp.
func TestOpportunityScoreComposition(t *testing.T) {
	// Every bonus maxed out: 60 + 20 + 20 + 10 + 12 clamps to 100.
	if got := opportunityScore(100, 10, 1000000, domain.IntentTransactional, true, domain.PageDestination); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
	// Nothing to reward beyond the baseline intent bonus.
	if got := opportunityScore(0, 0, 0, domain.IntentInformational, false, domain.PageHomepage); got != 5 {
		t.Fatalf("expected bare score 5, got %d", got)
	}
	// Break-even ROAS earns exactly the factor.
	if got := opportunityScore(10, 10, 0, domain.IntentInformational, false, domain.PageHomepage); got != 25 {
		t.Fatalf("expected 20 roas + 5 intent, got %d", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"CityDays":              "citydays",
		"Thames Cruises Direct": "thames-cruises-direct",
		"Ghost Walks UK!":       "ghost-walks-uk",
		"  spaced  out  ":       "spaced-out",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
