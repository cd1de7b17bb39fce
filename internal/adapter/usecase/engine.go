package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// Engine sequences the pipeline: hygiene, optional AI evaluation,
// profitability, scoring, selection, grouping, deployment. It implements
// port.BiddingEngine.
//
// The profile stage is idempotent and safe to re-run; hygiene and
// assignment mutate keyword state permanently, so concurrent runs over the
// same keyword pool are unsupported. Cancellation is cooperative between
// stages only.
type Engine struct {
	repo      port.CatalogueRepository
	checker   port.InventoryChecker
	evaluator port.QualityEvaluator // optional, may be nil
	deployer  port.CampaignDeployer // optional, may be nil
	cfg       configs.Bidding
	logger    *slog.Logger

	profitability *ProfitabilityCalculator
	hygiene       *KeywordHygiene
	scorer        *OpportunityScorer
	allocator     *BudgetAllocator
	grouper       *CampaignGrouper
}

// NewEngine wires the pipeline stages. evaluator and deployer may be nil;
// the corresponding stages are then skipped.
func NewEngine(repo port.CatalogueRepository, checker port.InventoryChecker, evaluator port.QualityEvaluator, deployer port.CampaignDeployer, cfg configs.Bidding, logger *slog.Logger) (*Engine, error) {
	hygiene, err := NewKeywordHygiene(repo, cfg, logger)
	if err != nil {
		return nil, err
	}
	router := NewLandingPageRouter(DefaultSignalTables(), cfg)
	return &Engine{
		repo:          repo,
		checker:       checker,
		evaluator:     evaluator,
		deployer:      deployer,
		cfg:           cfg,
		logger:        logger,
		profitability: NewProfitabilityCalculator(repo, cfg, logger),
		hygiene:       hygiene,
		scorer:        NewOpportunityScorer(repo, router, cfg, logger),
		allocator:     NewBudgetAllocator(cfg.GlobalDailyCap),
		grouper:       NewCampaignGrouper(),
	}, nil
}

// Run executes one engine run in the given mode. Only a failure to read
// the active-site catalogue is fatal; every other collaborator failure is
// logged and the pipeline continues without that enrichment.
func (e *Engine) Run(ctx context.Context, mode port.RunMode) (*port.RunSummary, error) {
	summary := &port.RunSummary{
		RunID:     uuid.NewString(),
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
	log := e.logger.With(slog.String("run_id", summary.RunID), slog.String("mode", string(mode)))
	log.Info("engine run started")

	sites, err := e.repo.ActiveSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("read active sites: %w", err)
	}

	keywords, err := e.repo.BiddableKeywords(ctx)
	if err != nil {
		log.Warn("biddable keywords unavailable", slog.Any("error", err))
		keywords = nil
	}

	// Stage 1: hygiene. Archive zero-intent keywords, then assign the rest.
	keywords, summary.KeywordsArchived = e.hygiene.Archive(ctx, keywords)
	summary.KeywordsAssigned = e.hygiene.Assign(ctx, keywords, sites)
	log.Info("hygiene complete",
		slog.Int("archived", summary.KeywordsArchived),
		slog.Int("assigned", summary.KeywordsAssigned))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: optional AI quality evaluation, once per run, non-fatal.
	if e.evaluator != nil && len(keywords) > 0 {
		eval, err := e.evaluator.EvaluateKeywords(ctx, keywords)
		if err != nil {
			log.Warn("quality evaluation failed, continuing", slog.Any("error", err))
		} else {
			summary.AIEvaluated = eval.Bid + eval.Review + eval.Skip
			summary.AIAutoArchived = eval.AutoArchived
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: profitability for every target, sites and microsites.
	profiles, err := e.profitability.ComputeAll(ctx, sites)
	if err != nil {
		return nil, err
	}
	for _, p := range sortedProfiles(profiles) {
		if err := e.repo.SaveProfile(ctx, p); err != nil {
			log.Warn("profile save failed",
				slog.Int64("site_id", p.SiteID), slog.Any("error", err))
		}
	}
	summary.ProfilesComputed = len(profiles)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if mode == port.ModeReportOnly {
		e.finish(ctx, summary, log)
		return summary, nil
	}

	// Stage 4: scoring, with a validator scoped to exactly this run.
	validator := NewRunValidator(e.checker, e.cfg.ValidatorCallBudget, e.cfg.MinLandingProducts, e.logger)
	candidates := e.scorer.ScoreAll(ctx, keywords, sites, profiles, validator)
	summary.CandidatesScored = len(candidates)
	summary.ValidatorCallsUsed = validator.Used()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: budget-constrained selection.
	selected, allocated := e.allocator.Select(candidates)
	summary.Selected = len(selected)
	summary.BudgetAllocated = allocated
	summary.BudgetRemaining = e.cfg.GlobalDailyCap - allocated
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 6: grouping and hand-off to the deployment collaborator.
	groups := e.grouper.Group(selected)
	summary.GroupsEmitted = len(groups)
	if e.deployer != nil && len(groups) > 0 {
		if err := e.deployer.Deploy(ctx, summary.RunID, groups); err != nil {
			log.Error("deployment hand-off failed", slog.Any("error", err))
		}
	}

	e.finish(ctx, summary, log)
	return summary, nil
}

// finish stamps and persists the summary. Persistence failures only warn:
// the summary is still returned to the caller.
func (e *Engine) finish(ctx context.Context, summary *port.RunSummary, log *slog.Logger) {
	summary.FinishedAt = time.Now().UTC()
	if err := e.repo.SaveRunSummary(ctx, *summary); err != nil {
		log.Warn("run summary save failed", slog.Any("error", err))
	}
	log.Info("engine run finished",
		slog.Int("profiles", summary.ProfilesComputed),
		slog.Int("scored", summary.CandidatesScored),
		slog.Int("selected", summary.Selected),
		slog.Int("groups", summary.GroupsEmitted),
		slog.Float64("budget_allocated", summary.BudgetAllocated),
		slog.Duration("took", summary.FinishedAt.Sub(summary.StartedAt)))
}

// Profiles exposes the latest computed profiles for the reporting surface.
func (e *Engine) Profiles(ctx context.Context) ([]domain.SiteProfile, error) {
	return e.repo.Profiles(ctx)
}

// LatestRun exposes the most recent run summary, nil when none exists.
func (e *Engine) LatestRun(ctx context.Context) (*port.RunSummary, error) {
	return e.repo.LatestRunSummary(ctx)
}
