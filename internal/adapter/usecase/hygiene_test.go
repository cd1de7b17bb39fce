package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port/mocks"
)

// TestIsLowIntentWordBoundary checks terms match whole words only:
// "freedom trail" must survive while "free walking tour" does not.
func TestIsLowIntentWordBoundary(t *testing.T) {
	h, err := NewKeywordHygiene(mocks.NewMockCatalogueRepository(t), testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}

	cases := []struct {
		text string
		want bool
	}{
		{"free walking tour london", true},
		{"FREE tickets", true},
		{"freedom trail boston", false},
		{"cheapest escape room", true},
		{"cheap escape room", false},
		{"london escape room", false},
	}
	for _, tc := range cases {
		if got := h.IsLowIntent(tc.text); got != tc.want {
			t.Errorf("IsLowIntent(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

// TestArchiveLowIntent checks the hygiene pass archives zero-intent keywords
// permanently and returns only the survivors.
func TestArchiveLowIntent(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ArchiveKeyword(mock.Anything, int64(2), "low_intent_term").Return(nil)

	h, err := NewKeywordHygiene(repo, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}

	keywords := []domain.CandidateKeyword{
		{ID: 1, Text: "london escape room"},
		{ID: 2, Text: "free walking tour london"},
		{ID: 3, Text: "freedom trail boston"},
	}
	kept, archived := h.Archive(context.Background(), keywords)
	if archived != 1 {
		t.Fatalf("expected 1 archived, got %d", archived)
	}
	if len(kept) != 2 || kept[0].ID != 1 || kept[1].ID != 3 {
		t.Fatalf("unexpected survivors: %+v", kept)
	}
}

// TestArchiveWriteFailureKeepsKeyword checks a failed archive write leaves
// the keyword in the biddable pool instead of dropping it silently.
func TestArchiveWriteFailureKeepsKeyword(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ArchiveKeyword(mock.Anything, int64(7), "low_intent_term").
		Return(errors.New("write failed"))

	h, err := NewKeywordHygiene(repo, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}

	kept, archived := h.Archive(context.Background(), []domain.CandidateKeyword{
		{ID: 7, Text: "free walking tour london"},
	})
	if archived != 0 {
		t.Fatalf("expected 0 archived, got %d", archived)
	}
	if len(kept) != 1 || kept[0].ID != 7 {
		t.Fatalf("expected keyword kept after failed write, got %+v", kept)
	}
}

// TestAssignBestSite checks keywords go to the highest-scoring main site and
// that non-main sites never compete for assignment.
func TestAssignBestSite(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	sites := []domain.Site{
		{
			ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true,
			Destinations: []string{"london", "manchester"},
			Categories:   []string{"escape room", "afternoon tea"},
		},
		{
			ID: 2, Name: "Riviera Trips", Kind: domain.SiteMain, Active: true,
			Destinations: []string{"rome", "florence"},
		},
		{
			ID: 3, Name: "Thames Cruises Direct", Kind: domain.SiteSupplierMicrosite, Active: true,
			Destinations: []string{"london"},
		},
	}
	keywords := []domain.CandidateKeyword{
		{ID: 10, Text: "london escape room", Location: "london"},
		{ID: 11, Text: "things to do in rome"},
		{ID: 12, Text: "quantum flux generator"},
	}

	// destination 10 + location 8 + category 5
	repo.EXPECT().AssignKeyword(mock.Anything, int64(10), int64(1), 23.0).Return(nil)
	// destination only
	repo.EXPECT().AssignKeyword(mock.Anything, int64(11), int64(2), 10.0).Return(nil)
	// below threshold: default site, zero score
	repo.EXPECT().AssignKeyword(mock.Anything, int64(12), int64(1), 0.0).Return(nil)

	h, err := NewKeywordHygiene(repo, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}
	assigned := h.Assign(context.Background(), keywords, sites)
	if assigned != 3 {
		t.Fatalf("expected 3 assigned, got %d", assigned)
	}
	if keywords[0].AssignedSiteID == nil || *keywords[0].AssignedSiteID != 1 {
		t.Fatalf("keyword 10 not assigned in place: %+v", keywords[0])
	}
	if keywords[1].Status != domain.KeywordAssigned || keywords[1].Priority != 10 {
		t.Fatalf("keyword 11 state not updated: %+v", keywords[1])
	}
}

// TestAssignTieBreaksOnLowerSiteID checks deterministic assignment when two
// sites score identically.
func TestAssignTieBreaksOnLowerSiteID(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	sites := []domain.Site{
		{ID: 7, Name: "Seven", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
		{ID: 3, Name: "Three", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
	}
	repo.EXPECT().AssignKeyword(mock.Anything, int64(20), int64(3), 10.0).Return(nil)

	h, err := NewKeywordHygiene(repo, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}
	keywords := []domain.CandidateKeyword{{ID: 20, Text: "london boat hire"}}
	if got := h.Assign(context.Background(), keywords, sites); got != 1 {
		t.Fatalf("expected 1 assigned, got %d", got)
	}
}

// TestAssignSkipsAlreadyAssigned checks assigned keywords are left alone.
func TestAssignSkipsAlreadyAssigned(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	h, err := NewKeywordHygiene(repo, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewKeywordHygiene error: %v", err)
	}

	siteID := int64(2)
	keywords := []domain.CandidateKeyword{
		{ID: 30, Text: "london escape room", AssignedSiteID: &siteID},
	}
	sites := []domain.Site{
		{ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
	}
	if got := h.Assign(context.Background(), keywords, sites); got != 0 {
		t.Fatalf("expected 0 assigned, got %d", got)
	}
	if *keywords[0].AssignedSiteID != 2 {
		t.Fatalf("existing assignment changed: %+v", keywords[0])
	}
}

// TestMatchScoreAwardsEachKindOnce checks a keyword naming two destinations
// of the same site scores no higher than one naming a single destination.
func TestMatchScoreAwardsEachKindOnce(t *testing.T) {
	site := domain.Site{
		ID: 1, Name: "CityDays", Kind: domain.SiteMain,
		Destinations: []string{"london", "york"},
	}
	one := matchScore(domain.CandidateKeyword{Text: "london day trips"}, site)
	two := matchScore(domain.CandidateKeyword{Text: "london to york day trips"}, site)
	if one != two {
		t.Fatalf("destination weight awarded more than once: %v vs %v", one, two)
	}
	if one != weightDestination {
		t.Fatalf("expected score %d, got %v", weightDestination, one)
	}
}
