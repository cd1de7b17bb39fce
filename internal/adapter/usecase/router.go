package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// SignalTables hold the phrase lists that drive landing-page
// classification. They are plain data so classification is a pure function
// of (keyword, tables) and can be tuned without touching the pipeline.
type SignalTables struct {
	// BlogPhrases signal research intent better served by editorial pages.
	BlogPhrases []string
	// CollectionPhrases signal an audience or season matched by curated
	// collections.
	CollectionPhrases []string
	// DestinationPhrases signal destination discovery ("things to do in").
	DestinationPhrases []string
	// CategoryStems are product-category word stems.
	CategoryStems []string
	// StopWords are stripped when building search queries and when
	// extracting significant words for title matching.
	StopWords []string
}

// DefaultSignalTables returns the portfolio's standard phrase tables.
func DefaultSignalTables() SignalTables {
	return SignalTables{
		BlogPhrases: []string{
			"blog", "guide", "tips", "ideas", "itinerary", "review",
			"best time to", "what to wear", "how to plan",
		},
		CollectionPhrases: []string{
			"for couples", "for families", "for kids", "with kids",
			"hen party", "stag do", "date night", "rainy day",
			"christmas", "halloween", "valentine", "summer holiday",
		},
		DestinationPhrases: []string{
			"things to do in", "what to do in", "activities in",
			"attractions in", "days out in", "places to visit in",
		},
		CategoryStems: []string{
			"tour", "cruise", "tasting", "cooking class", "workshop",
			"escape room", "spa day", "afternoon tea", "zip line",
			"kayaking", "distillery", "brewery", "ghost walk",
			"theme park", "experience day",
		},
		StopWords: []string{
			"the", "a", "an", "in", "on", "at", "for", "to", "of",
			"and", "or", "near", "me", "best", "top", "cheap", "deals",
			"tickets", "book", "booking", "price", "prices", "things",
			"do", "what", "see", "visit", "places", "with",
		},
	}
}

// Classify infers the keyword's landing-page affinity from the signal
// tables, first match wins. It is pure: no I/O, no site context.
func Classify(kw domain.CandidateKeyword, t SignalTables) domain.PageType {
	text := strings.ToLower(kw.Text)
	switch {
	case kw.Intent == domain.IntentInformational || containsAny(text, t.BlogPhrases):
		return domain.PageBlog
	case containsAny(text, t.CollectionPhrases):
		return domain.PageCollection
	}
	destPhrase := containsAny(text, t.DestinationPhrases)
	hasStem := containsAny(text, t.CategoryStems)
	hasLocation := kw.Location != "" || (destPhrase && extractLocation(kw, t) != "")
	switch {
	case destPhrase && !hasStem:
		return domain.PageDestination
	case hasStem && !hasLocation:
		return domain.PageCategory
	default:
		return domain.PageExperiencesFiltered
	}
}

// RelevanceBonus rewards landing-page types by how directly they can
// convert paid traffic. Destination and category pages score highest,
// editorial lowest, homepages nothing.
func RelevanceBonus(t domain.PageType) int {
	switch t {
	case domain.PageDestination, domain.PageCategory:
		return 12
	case domain.PageCollection, domain.PageExperienceDetail:
		return 8
	case domain.PageExperiencesFiltered:
		return 5
	case domain.PageBlog:
		return 2
	default:
		return 0
	}
}

// SiteContent is the published routing inventory of one site, prefetched
// once per site per run by the scorer.
type SiteContent struct {
	Pages       []domain.Page
	Collections []domain.Collection
}

// LandingPageRouter resolves one keyword to one landing page on one site.
// It holds no per-run state: the validator is passed in by the caller that
// owns the run.
type LandingPageRouter struct {
	tables SignalTables
	cfg    configs.Bidding
	now    func() time.Time
}

// NewLandingPageRouter returns a router classifying with the given tables.
func NewLandingPageRouter(tables SignalTables, cfg configs.Bidding) *LandingPageRouter {
	return &LandingPageRouter{tables: tables, cfg: cfg, now: time.Now}
}

// Route resolves the landing page for kw on site. It never fails: the worst
// case is a homepage or an unvalidated filtered listing the scorer's
// post-filter may drop.
func (r *LandingPageRouter) Route(ctx context.Context, kw domain.CandidateKeyword, site domain.Site, content SiteContent, val *RunValidator) domain.LandingPageTarget {
	// Fast exits, evaluated before classification.
	switch {
	case kw.Intent == domain.IntentNavigational:
		return r.homepage(site)
	case site.ProductCount > 0 && site.ProductCount < r.cfg.SmallCatalogueThreshold:
		return r.homepage(site)
	case site.IsMicrosite() && site.ProductCount == 1:
		return r.homepage(site)
	}

	pt := Classify(kw, r.tables)
	if site.Kind == domain.SiteSupplierMicrosite {
		return r.routeSupplier(kw, site)
	}
	return r.routeDiscovery(ctx, kw, site, pt, content, val)
}

// routeSupplier builds a URL for a supplier microsite. The supplier product
// API only filters by a city or category the supplier owns; when neither
// matches the keyword the homepage is used rather than guessing a query
// string the API cannot serve.
func (r *LandingPageRouter) routeSupplier(kw domain.CandidateKeyword, site domain.Site) domain.LandingPageTarget {
	text := strings.ToLower(kw.Text)
	loc := strings.ToLower(kw.Location)

	city := ""
	for _, c := range site.SupplierCities {
		cl := strings.ToLower(c)
		if cl != "" && (strings.Contains(text, cl) || (loc != "" && strings.Contains(loc, cl))) {
			city = c
			break
		}
	}
	category := ""
	for _, c := range site.SupplierCategories {
		if cl := strings.ToLower(c); cl != "" && strings.Contains(text, cl) {
			category = c
			break
		}
	}
	if city == "" && category == "" {
		return r.homepage(site)
	}

	params := url.Values{}
	if city != "" {
		params.Set("city", city)
	}
	if category != "" {
		params.Set("category", category)
	}
	path := "/experiences?" + params.Encode()
	// The supplier's catalogue is known, so the listing is trusted without
	// spending validator budget.
	count := site.ProductCount
	var countPtr *int
	if count > 0 {
		countPtr = &count
	}
	return domain.LandingPageTarget{
		URL:              "https://" + site.Domain + path,
		Path:             path,
		Type:             domain.PageExperiencesFiltered,
		Validated:        false,
		ProductCount:     countPtr,
		ValidationReason: domain.ValidationSkipped,
	}
}

// routeDiscovery builds a URL for a main site or opportunity microsite,
// which share a free-text discovery API. It walks the fallback chain from
// the classified entry point: blog, collection, destination page, category
// page, then the filtered listing.
func (r *LandingPageRouter) routeDiscovery(ctx context.Context, kw domain.CandidateKeyword, site domain.Site, pt domain.PageType, content SiteContent, val *RunValidator) domain.LandingPageTarget {
	entry := map[domain.PageType]int{
		domain.PageBlog:                0,
		domain.PageCollection:          1,
		domain.PageDestination:         2,
		domain.PageCategory:            3,
		domain.PageExperiencesFiltered: 4,
	}[pt]

	if entry <= 0 {
		if t, ok := r.matchBlog(kw, site, content.Pages); ok {
			return t
		}
	}
	if entry <= 1 {
		if t, ok := r.matchCollection(kw, site, content.Collections); ok {
			return t
		}
	}
	if entry <= 2 {
		if t, ok := r.matchDestinationPage(ctx, kw, site, content.Pages, val); ok {
			return t
		}
	}
	if entry <= 3 {
		if t, ok := r.matchCategoryPage(ctx, kw, site, content.Pages, val); ok {
			return t
		}
	}
	return r.filteredListing(ctx, kw, site, val)
}

// matchBlog looks for a published blog page whose title shares at least two
// significant keyword words.
func (r *LandingPageRouter) matchBlog(kw domain.CandidateKeyword, site domain.Site, pages []domain.Page) (domain.LandingPageTarget, bool) {
	words := significantWords(kw.Text, r.tables.StopWords)
	for _, p := range pages {
		if p.Type != domain.PageBlog {
			continue
		}
		if overlap(words, strings.ToLower(p.Title)) >= 2 {
			return r.pageTarget(site, p, domain.PageBlog), true
		}
	}
	return domain.LandingPageTarget{}, false
}

// matchCollection looks for an active, seasonally relevant collection with
// enough products and a name overlapping the keyword.
func (r *LandingPageRouter) matchCollection(kw domain.CandidateKeyword, site domain.Site, collections []domain.Collection) (domain.LandingPageTarget, bool) {
	words := significantWords(kw.Text, r.tables.StopWords)
	month := int(r.now().Month())
	for _, c := range collections {
		if c.ProductCount < r.cfg.MinLandingProducts {
			continue
		}
		if len(c.ActiveMonths) > 0 && !containsInt(c.ActiveMonths, month) {
			continue
		}
		if overlap(words, strings.ToLower(c.Name)) < 1 {
			continue
		}
		count := c.ProductCount
		return domain.LandingPageTarget{
			URL:              "https://" + site.Domain + c.Path,
			Path:             c.Path,
			Type:             domain.PageCollection,
			Validated:        true,
			ProductCount:     &count,
			ValidationReason: domain.ValidationSkipped,
		}, true
	}
	return domain.LandingPageTarget{}, false
}

// matchDestinationPage looks for a location-tagged destination page whose
// location or title overlaps the keyword, then validates its inventory.
func (r *LandingPageRouter) matchDestinationPage(ctx context.Context, kw domain.CandidateKeyword, site domain.Site, pages []domain.Page, val *RunValidator) (domain.LandingPageTarget, bool) {
	text := strings.ToLower(kw.Text)
	words := significantWords(kw.Text, r.tables.StopWords)
	for _, p := range pages {
		if p.Type != domain.PageDestination || p.Location == "" {
			continue
		}
		if !strings.Contains(text, strings.ToLower(p.Location)) && overlap(words, strings.ToLower(p.Title)) < 1 {
			continue
		}
		out := val.Check(ctx, port.LandingKey{
			SiteID:      site.ID,
			Type:        domain.PageDestination,
			Destination: p.Location,
		})
		if !out.Accepted {
			continue
		}
		t := r.pageTarget(site, p, domain.PageDestination)
		t.Validated = true
		t.ProductCount = out.ProductCount
		t.ValidationReason = out.Reason
		return t, true
	}
	return domain.LandingPageTarget{}, false
}

// matchCategoryPage looks for a category-tagged page whose category stem
// appears in the keyword, then validates its inventory.
func (r *LandingPageRouter) matchCategoryPage(ctx context.Context, kw domain.CandidateKeyword, site domain.Site, pages []domain.Page, val *RunValidator) (domain.LandingPageTarget, bool) {
	text := strings.ToLower(kw.Text)
	for _, p := range pages {
		if p.Type != domain.PageCategory || p.Category == "" {
			continue
		}
		if !strings.Contains(text, strings.ToLower(p.Category)) {
			continue
		}
		out := val.Check(ctx, port.LandingKey{
			SiteID:   site.ID,
			Type:     domain.PageCategory,
			Category: p.Category,
		})
		if !out.Accepted {
			continue
		}
		t := r.pageTarget(site, p, domain.PageCategory)
		t.Validated = true
		t.ProductCount = out.ProductCount
		t.ValidationReason = out.Reason
		return t, true
	}
	return domain.LandingPageTarget{}, false
}

// filteredListing is the terminal fallback: a filtered listing built from
// the keyword's location and a cleaned free-text query. It is always
// buildable; validation decides whether the scorer keeps it.
func (r *LandingPageRouter) filteredListing(ctx context.Context, kw domain.CandidateKeyword, site domain.Site, val *RunValidator) domain.LandingPageTarget {
	loc := extractLocation(kw, r.tables)
	query := cleanQuery(kw.Text, loc, r.tables.StopWords)

	params := url.Values{}
	if loc != "" {
		params.Set("destination", loc)
	}
	if query != "" {
		params.Set("q", query)
	}
	path := "/experiences"
	if enc := params.Encode(); enc != "" {
		path += "?" + enc
	}

	out := val.Check(ctx, port.LandingKey{
		SiteID:      site.ID,
		Type:        domain.PageExperiencesFiltered,
		Destination: loc,
		Query:       query,
	})
	return domain.LandingPageTarget{
		URL:              "https://" + site.Domain + path,
		Path:             path,
		Type:             domain.PageExperiencesFiltered,
		Validated:        out.Accepted,
		ProductCount:     out.ProductCount,
		ValidationReason: out.Reason,
	}
}

func (r *LandingPageRouter) homepage(site domain.Site) domain.LandingPageTarget {
	return domain.LandingPageTarget{
		URL:              "https://" + site.Domain + "/",
		Path:             "/",
		Type:             domain.PageHomepage,
		Validated:        true,
		ValidationReason: domain.ValidationSkipped,
	}
}

func (r *LandingPageRouter) pageTarget(site domain.Site, p domain.Page, t domain.PageType) domain.LandingPageTarget {
	return domain.LandingPageTarget{
		URL:              "https://" + site.Domain + p.Path,
		Path:             p.Path,
		Type:             t,
		Validated:        true,
		ValidationReason: domain.ValidationSkipped,
	}
}

// extractLocation returns the keyword's location: the explicit location
// field when present, otherwise the text remaining after a destination
// phrase ("things to do in rome" yields "rome").
func extractLocation(kw domain.CandidateKeyword, t SignalTables) string {
	if loc := strings.TrimSpace(strings.ToLower(kw.Location)); loc != "" {
		return loc
	}
	text := strings.ToLower(kw.Text)
	for _, phrase := range t.DestinationPhrases {
		if idx := strings.Index(text, phrase); idx >= 0 {
			rest := strings.TrimSpace(text[idx+len(phrase):])
			if rest != "" {
				return rest
			}
		}
	}
	return ""
}

// cleanQuery strips stop words and the location from the keyword, leaving
// the free-text search terms. It may legitimately return "".
func cleanQuery(text, location string, stopWords []string) string {
	text = strings.ToLower(text)
	locWords := map[string]bool{}
	for _, w := range strings.Fields(location) {
		locWords[w] = true
	}
	stops := map[string]bool{}
	for _, w := range stopWords {
		stops[strings.ToLower(w)] = true
	}
	var out []string
	for _, w := range strings.Fields(text) {
		if stops[w] || locWords[w] {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// significantWords returns the lowercase non-stop-words of the text that
// are long enough to carry meaning in a title match.
func significantWords(text string, stopWords []string) []string {
	stops := map[string]bool{}
	for _, w := range stopWords {
		stops[strings.ToLower(w)] = true
	}
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) <= 2 || stops[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// overlap counts how many of the words appear in the candidate text.
func overlap(words []string, text string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
