package port

import (
	"context"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// LandingKey identifies one landing page for inventory checking. It doubles
// as the validator's cache key: two keywords resolving to the same key share
// one check.
type LandingKey struct {
	SiteID      int64
	Type        domain.PageType
	Destination string
	Category    string
	Query       string
}

// InventoryChecker is the outbound port to inventory validation. A check
// answers whether the page behind the key would list enough products to be
// worth sending paid traffic to. Implementations may be slow or flaky; the
// engine wraps them in a budgeted, fail-open validator.
type InventoryChecker interface {
	CheckInventory(ctx context.Context, key LandingKey) (domain.InventoryResult, error)
}

// EvaluationSummary is what the optional AI quality evaluator reports for a
// keyword batch.
type EvaluationSummary struct {
	Bid          int
	Review       int
	Skip         int
	AutoArchived int
}

// QualityEvaluator is the optional AI collaborator invoked once per run
// before profitability. Failures are logged and non-fatal.
type QualityEvaluator interface {
	EvaluateKeywords(ctx context.Context, keywords []domain.CandidateKeyword) (EvaluationSummary, error)
}

// CampaignDeployer consumes the emitted campaign groups. The engine never
// talks to ad platforms itself; the deployer owns that boundary.
type CampaignDeployer interface {
	Deploy(ctx context.Context, runID string, groups []domain.CampaignGroup) error
}
