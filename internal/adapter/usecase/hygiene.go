package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// assignmentThreshold is the minimum match score before a keyword is
// assigned to the winning site rather than the default site.
const assignmentThreshold = 3

// Match-profile weights, additive across kinds.
const (
	weightDestination = 10
	weightLocation    = 8
	weightSiteName    = 7
	weightCategory    = 5
	weightSearchTerm  = 3
)

// KeywordHygiene archives zero-intent keywords and assigns the rest to the
// best-matching main site. Archival is permanent: an archived keyword never
// re-enters the biddable pool. Assignment mutates keyword state, so at most
// one run per keyword pool may be active.
type KeywordHygiene struct {
	repo      port.CatalogueRepository
	cfg       configs.Bidding
	logger    *slog.Logger
	lowIntent *regexp.Regexp
}

// NewKeywordHygiene compiles the configured low-intent term list into a
// whole-word, case-insensitive matcher. Terms match at any position in the
// keyword as long as they are bounded by non-word characters.
func NewKeywordHygiene(repo port.CatalogueRepository, cfg configs.Bidding, logger *slog.Logger) (*KeywordHygiene, error) {
	quoted := make([]string, 0, len(cfg.LowIntentTerms))
	for _, t := range cfg.LowIntentTerms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	if len(quoted) == 0 {
		quoted = append(quoted, regexp.QuoteMeta("free"))
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile low-intent terms: %w", err)
	}
	return &KeywordHygiene{repo: repo, cfg: cfg, logger: logger, lowIntent: re}, nil
}

// IsLowIntent reports whether the keyword text contains a configured
// zero-intent term as a whole word.
func (h *KeywordHygiene) IsLowIntent(text string) bool {
	return h.lowIntent.MatchString(text)
}

// Archive removes every low-intent keyword from the biddable pool and
// returns the surviving keywords with the archived count. A failed archive
// write keeps the keyword biddable and is logged.
func (h *KeywordHygiene) Archive(ctx context.Context, keywords []domain.CandidateKeyword) ([]domain.CandidateKeyword, int) {
	kept := make([]domain.CandidateKeyword, 0, len(keywords))
	archived := 0
	for _, kw := range keywords {
		if !h.IsLowIntent(kw.Text) {
			kept = append(kept, kw)
			continue
		}
		if err := h.repo.ArchiveKeyword(ctx, kw.ID, "low_intent_term"); err != nil {
			h.logger.Warn("archive failed, keyword kept",
				slog.Int64("keyword_id", kw.ID), slog.Any("error", err))
			kept = append(kept, kw)
			continue
		}
		archived++
	}
	return kept, archived
}

// Assign routes every unassigned keyword to the highest-scoring active main
// site, or to the configured default site when no site reaches the score
// threshold. Ties break on the lower site id so assignment is
// deterministic. The keywords slice is updated in place and the number of
// newly assigned keywords returned.
func (h *KeywordHygiene) Assign(ctx context.Context, keywords []domain.CandidateKeyword, sites []domain.Site) int {
	mains := make([]domain.Site, 0, len(sites))
	for _, s := range sites {
		if s.Kind == domain.SiteMain && s.Active {
			mains = append(mains, s)
		}
	}

	assigned := 0
	for i := range keywords {
		kw := &keywords[i]
		if kw.AssignedSiteID != nil {
			continue
		}
		siteID := h.cfg.DefaultSiteID
		best := 0.0
		for _, s := range mains {
			score := matchScore(*kw, s)
			if score > best || (score == best && score >= assignmentThreshold && s.ID < siteID) {
				best = score
				siteID = s.ID
			}
		}
		if best < assignmentThreshold {
			siteID = h.cfg.DefaultSiteID
			best = 0
		}
		if err := h.repo.AssignKeyword(ctx, kw.ID, siteID, best); err != nil {
			h.logger.Warn("assignment write failed",
				slog.Int64("keyword_id", kw.ID), slog.Any("error", err))
			continue
		}
		id := siteID
		kw.AssignedSiteID = &id
		kw.Status = domain.KeywordAssigned
		kw.Priority = best
		assigned++
	}
	return assigned
}

// matchScore scores one keyword against one site's match profile. Each
// matching kind contributes its weight once: a keyword naming two of the
// site's destinations scores the same as one naming a single destination.
func matchScore(kw domain.CandidateKeyword, site domain.Site) float64 {
	text := strings.ToLower(kw.Text)
	loc := strings.ToLower(strings.TrimSpace(kw.Location))

	score := 0.0
	destHit, locHit := false, false
	for _, d := range site.Destinations {
		d = strings.ToLower(d)
		if d == "" {
			continue
		}
		if !destHit && strings.Contains(text, d) {
			destHit = true
		}
		if !locHit && loc != "" && (strings.Contains(loc, d) || strings.Contains(d, loc)) {
			locHit = true
		}
	}
	if destHit {
		score += weightDestination
	}
	if locHit {
		score += weightLocation
	}
	if name := strings.ToLower(site.Name); name != "" && strings.Contains(text, name) {
		score += weightSiteName
	}
	for _, c := range site.Categories {
		if c = strings.ToLower(c); c != "" && strings.Contains(text, c) {
			score += weightCategory
			break
		}
	}
	for _, t := range site.SearchTerms {
		if t = strings.ToLower(t); t != "" && strings.Contains(text, t) {
			score += weightSearchTerm
			break
		}
	}
	return score
}
