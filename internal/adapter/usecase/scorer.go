package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// Score weights. The four bonus groups plus the landing-page bonus sum to
// at most 100 before clamping.
const (
	roasBonusCap     = 60.0
	roasBonusFactor  = 20.0
	volumeBonusCap   = 20.0
	volumeBonusScale = 8.0

	intentBonusTransactional = 20.0
	intentBonusCommercial    = 15.0
	intentBonusOther         = 5.0

	micrositeBonus = 10.0

	// bidHeadroom caps the bid at 1.2x the estimated CPC so a high
	// profitability ceiling never produces an absurd bid.
	bidHeadroom  = 1.2
	daysPerMonth = 30.0
)

// OpportunityScorer turns the biddable keyword pool into scored campaign
// candidates: one per supported ad platform per keyword that survives the
// economic gates and the landing-page post-filter.
type OpportunityScorer struct {
	repo   port.CatalogueRepository
	router *LandingPageRouter
	cfg    configs.Bidding
	logger *slog.Logger
}

// NewOpportunityScorer returns a scorer routing landing pages with router.
func NewOpportunityScorer(repo port.CatalogueRepository, router *LandingPageRouter, cfg configs.Bidding, logger *slog.Logger) *OpportunityScorer {
	return &OpportunityScorer{repo: repo, router: router, cfg: cfg, logger: logger}
}

// ScoreAll scores every keyword against its resolved target and returns the
// surviving candidates sorted by score descending. Keywords without a
// usable profile or below the economic gates are dropped silently; they are
// unviable, not errors.
func (s *OpportunityScorer) ScoreAll(ctx context.Context, keywords []domain.CandidateKeyword, sites []domain.Site, profiles map[int64]domain.SiteProfile, val *RunValidator) []domain.CampaignCandidate {
	byID := make(map[int64]domain.Site, len(sites))
	var opportunities, suppliers []domain.Site
	for _, site := range sites {
		byID[site.ID] = site
		switch site.Kind {
		case domain.SiteOpportunityMicrosite:
			opportunities = append(opportunities, site)
		case domain.SiteSupplierMicrosite:
			suppliers = append(suppliers, site)
		}
	}
	sort.Slice(opportunities, func(i, j int) bool { return opportunities[i].ID < opportunities[j].ID })

	contentCache := make(map[int64]SiteContent)
	var out []domain.CampaignCandidate
	for _, kw := range keywords {
		if kw.EstimatedCPC <= 0 || kw.AssignedSiteID == nil {
			continue
		}
		site, ok := byID[*kw.AssignedSiteID]
		if !ok {
			continue
		}

		// Prefer a matching microsite over the assigned main site.
		micrositeMatch := false
		if ms, ok := s.matchMicrosite(kw, opportunities, suppliers, profiles); ok {
			site = ms
			micrositeMatch = true
		}

		profile, ok := profiles[site.ID]
		if !ok {
			continue // MissingProfile: target excluded from scoring
		}

		maxBid := math.Min(profile.MaxProfitableCPC, kw.EstimatedCPC*bidHeadroom)
		if maxBid < s.cfg.MinViableBid {
			continue
		}

		landing := s.router.Route(ctx, kw, site, s.siteContent(ctx, site, contentCache), val)
		if landing.ProductCount != nil && *landing.ProductCount == 0 {
			continue
		}
		// Filtered listings are trusted without validation only on supplier
		// microsites, whose catalogue is known.
		if landing.Type == domain.PageExperiencesFiltered &&
			site.Kind != domain.SiteSupplierMicrosite && !landing.Validated {
			continue
		}

		dailySearches := float64(kw.MonthlyVolume) / daysPerMonth
		clicks := dailySearches * s.cfg.AssumedCTR
		cost := clicks * kw.EstimatedCPC
		revenue := clicks * profile.RevenuePerClick
		score := opportunityScore(revenue, cost, kw.MonthlyVolume, kw.Intent, micrositeMatch, landing.Type)

		for _, platform := range s.cfg.Platforms {
			p := domain.Platform(platform)
			out = append(out, domain.CampaignCandidate{
				Keyword:              kw,
				SiteID:               site.ID,
				SiteName:             site.Name,
				Platform:             p,
				EstimatedCPC:         kw.EstimatedCPC,
				MaxBid:               maxBid,
				ExpectedDailyClicks:  clicks,
				ExpectedDailyCost:    cost,
				ExpectedDailyRevenue: revenue,
				Score:                score,
				Landing:              landing,
				Attribution:          attribution(p, site, kw),
				MicrositeMatch:       micrositeMatch,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// matchMicrosite tries the two microsite preferences in order: an
// opportunity microsite whose seed keywords match exactly or by substring,
// then a supplier microsite owning a city named in the keyword, preferring
// the largest supplier catalogue on ties. Only microsites with a computed
// profile are eligible.
func (s *OpportunityScorer) matchMicrosite(kw domain.CandidateKeyword, opportunities, suppliers []domain.Site, profiles map[int64]domain.SiteProfile) (domain.Site, bool) {
	text := strings.ToLower(kw.Text)

	for _, site := range opportunities {
		if _, ok := profiles[site.ID]; !ok {
			continue
		}
		for _, seed := range site.SeedKeywords {
			seed = strings.ToLower(strings.TrimSpace(seed))
			if seed == "" {
				continue
			}
			if text == seed || strings.Contains(text, seed) || strings.Contains(seed, text) {
				return site, true
			}
		}
	}

	var best domain.Site
	found := false
	for _, site := range suppliers {
		if _, ok := profiles[site.ID]; !ok {
			continue
		}
		for _, city := range site.SupplierCities {
			if city = strings.ToLower(city); city == "" || !strings.Contains(text, city) {
				continue
			}
			if !found || site.ProductCount > best.ProductCount {
				best = site
				found = true
			}
			break
		}
	}
	return best, found
}

// siteContent returns the site's routing inventory, fetching it once per
// site per run. Read failures degrade to empty content: the router then
// falls through to the filtered listing.
func (s *OpportunityScorer) siteContent(ctx context.Context, site domain.Site, cache map[int64]SiteContent) SiteContent {
	if c, ok := cache[site.ID]; ok {
		return c
	}
	var c SiteContent
	pages, err := s.repo.PublishedPages(ctx, site.ID)
	if err != nil {
		s.logger.Warn("published pages unavailable",
			slog.Int64("site_id", site.ID), slog.Any("error", err))
	} else {
		c.Pages = pages
	}
	collections, err := s.repo.ActiveCollections(ctx, site.ID)
	if err != nil {
		s.logger.Warn("collections unavailable",
			slog.Int64("site_id", site.ID), slog.Any("error", err))
	} else {
		c.Collections = collections
	}
	cache[site.ID] = c
	return c
}

// opportunityScore composes the 0-100 score: expected ROAS, search volume,
// intent, microsite match and landing-page type.
func opportunityScore(revenue, cost float64, volume int, intent domain.Intent, micrositeMatch bool, pageType domain.PageType) int {
	score := 0.0
	if cost > 0 {
		score += math.Min(roasBonusCap, revenue/cost*roasBonusFactor)
	}
	score += math.Min(volumeBonusCap, math.Log10(float64(volume)+1)*volumeBonusScale)
	switch intent {
	case domain.IntentTransactional:
		score += intentBonusTransactional
	case domain.IntentCommercial:
		score += intentBonusCommercial
	default:
		score += intentBonusOther
	}
	if micrositeMatch {
		score += micrositeBonus
	}
	score += float64(RelevanceBonus(pageType))

	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// attribution builds the per-platform tracking parameters attached to the
// candidate's final URLs.
func attribution(platform domain.Platform, site domain.Site, kw domain.CandidateKeyword) map[string]string {
	return map[string]string{
		"utm_source":   string(platform),
		"utm_medium":   "cpc",
		"utm_campaign": slugify(site.Name),
		"utm_term":     kw.Text,
		"clid":         uuid.NewString(),
	}
}

// slugify lowercases and hyphenates a display name for use in tracking
// parameters.
func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen && b.Len() > 0:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
