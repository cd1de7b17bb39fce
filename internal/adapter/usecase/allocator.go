package usecase

import (
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// BudgetAllocator selects candidates under the global daily cap with a
// single greedy pass over the score-sorted list. There is no lookahead or
// backtracking: once a candidate is rejected for budget, a later cheaper
// one may still fit, but a rejected one is never revisited. The simplicity
// is deliberate; the allocator runs on a pre-sorted list where score
// already encodes value.
type BudgetAllocator struct {
	cap float64
}

// NewBudgetAllocator returns an allocator with the given global daily cap.
func NewBudgetAllocator(globalDailyCap float64) *BudgetAllocator {
	return &BudgetAllocator{cap: globalDailyCap}
}

// Select returns the accepted candidates in input order together with the
// total expected daily cost allocated. Candidates expected to lose money
// (revenue below cost) are rejected outright regardless of budget.
func (a *BudgetAllocator) Select(candidates []domain.CampaignCandidate) ([]domain.CampaignCandidate, float64) {
	selected := make([]domain.CampaignCandidate, 0, len(candidates))
	total := 0.0
	for _, c := range candidates {
		if c.ExpectedDailyRevenue < c.ExpectedDailyCost {
			continue
		}
		if total+c.ExpectedDailyCost > a.cap {
			continue
		}
		total += c.ExpectedDailyCost
		selected = append(selected, c)
	}
	return selected, total
}
