package usecase

import (
	"testing"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

func candidateWithEconomics(id int64, cost, revenue float64) domain.CampaignCandidate {
	return domain.CampaignCandidate{
		Keyword:              domain.CandidateKeyword{ID: id},
		SiteID:               1,
		Platform:             domain.PlatformGoogle,
		ExpectedDailyCost:    cost,
		ExpectedDailyRevenue: revenue,
	}
}

// TestSelectGreedyUnderCap mirrors the single-pass semantics: with a 60 cap
// and costs 30, 40, 50 in score order, only the first fits. The cheaper
// later candidate is not revisited.
func TestSelectGreedyUnderCap(t *testing.T) {
	a := NewBudgetAllocator(60)
	candidates := []domain.CampaignCandidate{
		candidateWithEconomics(1, 30, 90),
		candidateWithEconomics(2, 40, 120),
		candidateWithEconomics(3, 50, 150),
	}
	selected, total := a.Select(candidates)
	if len(selected) != 1 || selected[0].Keyword.ID != 1 {
		t.Fatalf("expected only first candidate, got %+v", selected)
	}
	if !approx(total, 30) {
		t.Fatalf("expected 30 allocated, got %v", total)
	}
}

// TestSelectLaterCheaperCandidateFits checks a candidate rejected for budget
// does not block a later one that still fits.
func TestSelectLaterCheaperCandidateFits(t *testing.T) {
	a := NewBudgetAllocator(60)
	candidates := []domain.CampaignCandidate{
		candidateWithEconomics(1, 30, 90),
		candidateWithEconomics(2, 40, 120), // 70 > 60, rejected
		candidateWithEconomics(3, 25, 80),  // 55 <= 60, accepted
	}
	selected, total := a.Select(candidates)
	if len(selected) != 2 || selected[0].Keyword.ID != 1 || selected[1].Keyword.ID != 3 {
		t.Fatalf("unexpected selection: %+v", selected)
	}
	if !approx(total, 55) {
		t.Fatalf("expected 55 allocated, got %v", total)
	}
}

// TestSelectRejectsUnprofitable checks money-losing candidates never make it
// in, budget or not.
func TestSelectRejectsUnprofitable(t *testing.T) {
	a := NewBudgetAllocator(1000)
	candidates := []domain.CampaignCandidate{
		candidateWithEconomics(1, 10, 5),
		candidateWithEconomics(2, 10, 10),
		candidateWithEconomics(3, 10, 50),
	}
	selected, total := a.Select(candidates)
	if len(selected) != 2 {
		t.Fatalf("expected 2 selected, got %d", len(selected))
	}
	for _, c := range selected {
		if c.ExpectedDailyRevenue < c.ExpectedDailyCost {
			t.Fatalf("unprofitable candidate selected: %+v", c)
		}
	}
	if !approx(total, 20) {
		t.Fatalf("expected 20 allocated, got %v", total)
	}
}

// TestSelectNeverExceedsCap checks the budget invariant over a longer list.
func TestSelectNeverExceedsCap(t *testing.T) {
	const dailyCap = 100.0
	a := NewBudgetAllocator(dailyCap)
	var candidates []domain.CampaignCandidate
	for i := int64(1); i <= 30; i++ {
		cost := float64(i%7) * 5
		candidates = append(candidates, candidateWithEconomics(i, cost, cost*2))
	}
	selected, total := a.Select(candidates)
	if total > dailyCap {
		t.Fatalf("allocated %v over cap %v", total, dailyCap)
	}
	sum := 0.0
	for _, c := range selected {
		sum += c.ExpectedDailyCost
	}
	if !approx(sum, total) {
		t.Fatalf("reported total %v does not match selection %v", total, sum)
	}
}
