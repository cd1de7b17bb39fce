package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port/mocks"
)

// TestRunReportOnlyStopsAfterProfitability checks the report_only mode:
// hygiene and profiles run, nothing downstream does. Scoring would hit
// unexpected repository calls and fail the mock, so reaching the assertions
// proves the short-circuit.
func TestRunReportOnlyStopsAfterProfitability(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return([]domain.Site{
		{ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
	}, nil)
	repo.EXPECT().BiddableKeywords(mock.Anything).Return([]domain.CandidateKeyword{
		{ID: 1, Text: "free walking tour london"},
		{ID: 2, Text: "london escape room"},
	}, nil)
	repo.EXPECT().ArchiveKeyword(mock.Anything, int64(1), "low_intent_term").Return(nil)
	repo.EXPECT().AssignKeyword(mock.Anything, int64(2), int64(1), 10.0).Return(nil)
	repo.EXPECT().PortfolioBookingAggregate(mock.Anything, mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().CatalogueAveragePrice(mock.Anything).Return(0.0, nil)
	repo.EXPECT().BookingAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().TrafficAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.TrafficAggregate{}, nil)
	repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveRunSummary(mock.Anything, mock.Anything).Return(nil)

	engine, err := NewEngine(repo, nil, nil, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeReportOnly)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if summary.RunID == "" || summary.Mode != port.ModeReportOnly {
		t.Fatalf("bad summary identity: %+v", summary)
	}
	if summary.KeywordsArchived != 1 || summary.KeywordsAssigned != 1 {
		t.Fatalf("bad hygiene counts: %+v", summary)
	}
	if summary.ProfilesComputed != 1 {
		t.Fatalf("expected 1 profile, got %d", summary.ProfilesComputed)
	}
	if summary.CandidatesScored != 0 || summary.Selected != 0 || summary.GroupsEmitted != 0 {
		t.Fatalf("report_only must not score or select: %+v", summary)
	}
	if summary.FinishedAt.Before(summary.StartedAt) {
		t.Fatalf("finish before start: %+v", summary)
	}
}

// TestRunFullPipelineDeploys drives one profitable keyword through every
// stage and checks the deployer receives the emitted groups.
func TestRunFullPipelineDeploys(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return([]domain.Site{
		{ID: 1, Name: "Riviera Trips", Domain: "rivieratrips.example.com", Kind: domain.SiteMain, Active: true, Destinations: []string{"rome"}},
	}, nil)
	repo.EXPECT().BiddableKeywords(mock.Anything).Return([]domain.CandidateKeyword{
		{ID: 11, Text: "things to do in rome", Intent: domain.IntentCommercial, MonthlyVolume: 30000, EstimatedCPC: 0.90},
	}, nil)
	repo.EXPECT().AssignKeyword(mock.Anything, int64(11), int64(1), 10.0).Return(nil)
	repo.EXPECT().PortfolioBookingAggregate(mock.Anything, mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().CatalogueAveragePrice(mock.Anything).Return(0.0, nil)
	repo.EXPECT().BookingAggregate(mock.Anything, int64(1), mock.Anything).
		Return(domain.BookingAggregate{Samples: 5, MeanValue: 150, CommissionSamples: 5, MeanCommissionPct: 20}, nil)
	repo.EXPECT().TrafficAggregate(mock.Anything, int64(1), mock.Anything).
		Return(domain.TrafficAggregate{Sessions: 200, Bookings: 50}, nil)
	repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().PublishedPages(mock.Anything, int64(1)).Return(nil, nil)
	repo.EXPECT().ActiveCollections(mock.Anything, int64(1)).Return(nil, nil)
	repo.EXPECT().SaveRunSummary(mock.Anything, mock.Anything).Return(nil)

	deployer := mocks.NewMockCampaignDeployer(t)
	deployer.EXPECT().Deploy(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, runID string, groups []domain.CampaignGroup) {
			if runID == "" {
				t.Errorf("empty run id handed to deployer")
			}
			// One keyword on two platforms over one landing page: two groups.
			if len(groups) != 2 {
				t.Errorf("expected 2 groups, got %d", len(groups))
			}
		}).
		Return(nil)

	engine, err := NewEngine(repo, nil, nil, deployer, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeFull)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if summary.CandidatesScored != 2 || summary.Selected != 2 || summary.GroupsEmitted != 2 {
		t.Fatalf("bad pipeline counts: %+v", summary)
	}
	// 30000/30 searches x 2% CTR x 0.90 CPC = 18 per platform.
	if !approx(summary.BudgetAllocated, 36) {
		t.Fatalf("expected 36 allocated, got %v", summary.BudgetAllocated)
	}
	if !approx(summary.BudgetRemaining, 214) {
		t.Fatalf("expected 214 remaining, got %v", summary.BudgetRemaining)
	}
	if summary.ValidatorCallsUsed != 0 {
		t.Fatalf("no checker wired, expected 0 validator calls, got %d", summary.ValidatorCallsUsed)
	}
}

// TestRunActiveSitesFailureIsFatal checks the one fatal error of the run.
func TestRunActiveSitesFailureIsFatal(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return(nil, errors.New("catalogue down"))

	engine, err := NewEngine(repo, nil, nil, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeFull)
	if err == nil {
		t.Fatalf("expected fatal error, got summary %+v", summary)
	}
	if summary != nil {
		t.Fatalf("expected nil summary on fatal error, got %+v", summary)
	}
}

// TestRunEvaluatorFailureNonFatal checks a broken AI collaborator is logged
// and skipped, not propagated.
func TestRunEvaluatorFailureNonFatal(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return([]domain.Site{
		{ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
	}, nil)
	repo.EXPECT().BiddableKeywords(mock.Anything).Return([]domain.CandidateKeyword{
		{ID: 2, Text: "london escape room"},
	}, nil)
	repo.EXPECT().AssignKeyword(mock.Anything, int64(2), int64(1), 10.0).Return(nil)
	repo.EXPECT().PortfolioBookingAggregate(mock.Anything, mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().CatalogueAveragePrice(mock.Anything).Return(0.0, nil)
	repo.EXPECT().BookingAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().TrafficAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.TrafficAggregate{}, nil)
	repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveRunSummary(mock.Anything, mock.Anything).Return(nil)

	evaluator := mocks.NewMockQualityEvaluator(t)
	evaluator.EXPECT().EvaluateKeywords(mock.Anything, mock.Anything).
		Return(port.EvaluationSummary{}, errors.New("model overloaded"))

	engine, err := NewEngine(repo, nil, evaluator, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeReportOnly)
	if err != nil {
		t.Fatalf("evaluator failure must not fail the run: %v", err)
	}
	if summary.AIEvaluated != 0 || summary.AIAutoArchived != 0 {
		t.Fatalf("failed evaluation must not report counts: %+v", summary)
	}
}

// TestRunEvaluatorCountsReported checks the evaluation summary lands in the
// run summary.
func TestRunEvaluatorCountsReported(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return([]domain.Site{
		{ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true, Destinations: []string{"london"}},
	}, nil)
	repo.EXPECT().BiddableKeywords(mock.Anything).Return([]domain.CandidateKeyword{
		{ID: 2, Text: "london escape room"},
	}, nil)
	repo.EXPECT().AssignKeyword(mock.Anything, int64(2), int64(1), 10.0).Return(nil)
	repo.EXPECT().PortfolioBookingAggregate(mock.Anything, mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().CatalogueAveragePrice(mock.Anything).Return(0.0, nil)
	repo.EXPECT().BookingAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().TrafficAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.TrafficAggregate{}, nil)
	repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveRunSummary(mock.Anything, mock.Anything).Return(nil)

	evaluator := mocks.NewMockQualityEvaluator(t)
	evaluator.EXPECT().EvaluateKeywords(mock.Anything, mock.Anything).
		Return(port.EvaluationSummary{Bid: 2, Review: 1, Skip: 1, AutoArchived: 3}, nil)

	engine, err := NewEngine(repo, nil, evaluator, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeReportOnly)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.AIEvaluated != 4 || summary.AIAutoArchived != 3 {
		t.Fatalf("bad evaluation counts: %+v", summary)
	}
}

// TestRunToleratesKeywordAndSummaryFailures checks a keyword read failure
// and a summary persistence failure both degrade instead of failing the run.
func TestRunToleratesKeywordAndSummaryFailures(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().ActiveSites(mock.Anything).Return([]domain.Site{
		{ID: 1, Name: "CityDays", Kind: domain.SiteMain, Active: true},
	}, nil)
	repo.EXPECT().BiddableKeywords(mock.Anything).Return(nil, errors.New("keyword store down"))
	repo.EXPECT().PortfolioBookingAggregate(mock.Anything, mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().CatalogueAveragePrice(mock.Anything).Return(0.0, nil)
	repo.EXPECT().BookingAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.BookingAggregate{}, nil)
	repo.EXPECT().TrafficAggregate(mock.Anything, int64(1), mock.Anything).Return(domain.TrafficAggregate{}, nil)
	repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveRunSummary(mock.Anything, mock.Anything).Return(errors.New("summary store down"))

	engine, err := NewEngine(repo, nil, nil, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	summary, err := engine.Run(context.Background(), port.ModeReportOnly)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if summary.KeywordsArchived != 0 || summary.KeywordsAssigned != 0 {
		t.Fatalf("expected empty hygiene counts, got %+v", summary)
	}
	if summary.ProfilesComputed != 1 {
		t.Fatalf("profiles must still compute, got %+v", summary)
	}
}

// TestProfilesAndLatestRunDelegate checks the reporting methods read
// straight from the repository.
func TestProfilesAndLatestRunDelegate(t *testing.T) {
	repo := mocks.NewMockCatalogueRepository(t)
	repo.EXPECT().Profiles(mock.Anything).Return([]domain.SiteProfile{{SiteID: 1}}, nil)
	stored := &port.RunSummary{RunID: "r-1"}
	repo.EXPECT().LatestRunSummary(mock.Anything).Return(stored, nil)

	engine, err := NewEngine(repo, nil, nil, nil, testBiddingConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}

	profiles, err := engine.Profiles(context.Background())
	if err != nil || len(profiles) != 1 {
		t.Fatalf("Profiles: %v %+v", err, profiles)
	}
	latest, err := engine.LatestRun(context.Background())
	if err != nil || latest == nil || latest.RunID != "r-1" {
		t.Fatalf("LatestRun: %v %+v", err, latest)
	}
}
