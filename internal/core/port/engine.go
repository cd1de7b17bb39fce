package port

import (
	"context"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// RunMode selects how far an engine run proceeds. ModeFull runs every
// stage through deployment; ModeReportOnly stops after profitability and
// returns the computed profiles without touching keywords downstream of
// hygiene.
type RunMode string

const (
	ModeFull       RunMode = "full"
	ModeReportOnly RunMode = "report_only"
)

// RunSummary is the engine's result signal: stage counts and budget totals
// for one run. It is persisted per run and served over the operational API.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	Mode       RunMode   `json:"mode"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	KeywordsArchived int `json:"keywords_archived"`
	KeywordsAssigned int `json:"keywords_assigned"`
	AIEvaluated      int `json:"ai_evaluated"`
	AIAutoArchived   int `json:"ai_auto_archived"`
	ProfilesComputed int `json:"profiles_computed"`
	CandidatesScored int `json:"candidates_scored"`
	Selected         int `json:"selected"`
	GroupsEmitted    int `json:"groups_emitted"`

	BudgetAllocated    float64 `json:"budget_allocated"`
	BudgetRemaining    float64 `json:"budget_remaining"`
	ValidatorCallsUsed int64   `json:"validator_calls_used"`
}

// BiddingEngine is the inbound port: one batch run per invocation. At most
// one run per keyword pool may be active at a time; concurrent runs race on
// keyword-assignment writes.
type BiddingEngine interface {
	Run(ctx context.Context, mode RunMode) (*RunSummary, error)

	// Profiles returns the most recently computed financial profiles.
	Profiles(ctx context.Context) ([]domain.SiteProfile, error)
	// LatestRun returns the most recent run summary, nil when no run has
	// been recorded yet.
	LatestRun(ctx context.Context) (*RunSummary, error)
}
