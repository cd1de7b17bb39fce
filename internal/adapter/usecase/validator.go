package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// CheckOutcome is the validator's answer for one landing page. Accepted is
// true when the page may receive paid traffic: either the check counted
// enough products, or the validator failed open. Reason records which.
type CheckOutcome struct {
	Accepted     bool
	Reason       string
	ProductCount *int
}

// RunValidator wraps the inventory checker in a per-run cache and a hard
// global call budget. Both the cache and the counter live exactly one run:
// the orchestrator constructs a fresh validator per run and never shares it
// across runs. The counter is a single atomic value shared by every worker
// so the cap holds under parallel scoring.
//
// The validator fails open: once the budget is exhausted, or when a check
// errors, the page is accepted optimistically and tagged so the audit trail
// can tell real validations from optimistic ones. Running a possibly
// irrelevant ad is preferred over blocking the pipeline on a flaky
// dependency.
type RunValidator struct {
	checker     port.InventoryChecker
	budget      int64
	minProducts int
	logger      *slog.Logger

	used  atomic.Int64
	mu    sync.Mutex
	cache map[port.LandingKey]CheckOutcome
}

// NewRunValidator returns a validator good for exactly one engine run.
func NewRunValidator(checker port.InventoryChecker, budget int64, minProducts int, logger *slog.Logger) *RunValidator {
	return &RunValidator{
		checker:     checker,
		budget:      budget,
		minProducts: minProducts,
		logger:      logger,
		cache:       make(map[port.LandingKey]CheckOutcome),
	}
}

// Check validates one landing page, serving repeats from the cache. Cached
// outcomes do not consume budget.
func (v *RunValidator) Check(ctx context.Context, key port.LandingKey) CheckOutcome {
	v.mu.Lock()
	defer v.mu.Unlock()
	if out, ok := v.cache[key]; ok {
		return out
	}

	var out CheckOutcome
	switch {
	case v.checker == nil:
		out = CheckOutcome{Accepted: true, Reason: domain.ValidationSkipped}
	case v.used.Add(1) > v.budget:
		out = CheckOutcome{Accepted: true, Reason: domain.ValidationExhausted}
	default:
		res, err := v.checker.CheckInventory(ctx, key)
		if err != nil {
			v.logger.Warn("inventory check failed, accepting optimistically",
				slog.Any("key", key), slog.Any("error", err))
			out = CheckOutcome{Accepted: true, Reason: domain.ValidationFailed}
		} else {
			count := res.ProductCount
			out = CheckOutcome{
				Accepted:     res.Valid && count >= v.minProducts,
				Reason:       domain.ValidationChecked,
				ProductCount: &count,
			}
		}
	}
	v.cache[key] = out
	return out
}

// Used reports how many real checker calls the run has attempted, including
// the over-budget attempts that were answered optimistically.
func (v *RunValidator) Used() int64 {
	n := v.used.Load()
	if n > v.budget {
		return v.budget
	}
	return n
}
