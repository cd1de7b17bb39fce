package usecase

import (
	"io"
	"log/slog"
	"math"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config/configs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testBiddingConfig mirrors the env defaults so tests do not depend on the
// environment.
func testBiddingConfig() configs.Bidding {
	return configs.Bidding{
		TargetROAS:                    1.0,
		LookbackDays:                  90,
		MinBookingSamples:             3,
		MinPortfolioCommissionSamples: 5,
		MinSessions:                   100,
		DefaultAOV:                    120,
		DefaultCommissionPct:          15,
		DefaultConversionRate:         0.02,
		GlobalDailyCap:                250,
		MinViableBid:                  0.05,
		AssumedCTR:                    0.02,
		LowIntentTerms:                []string{"free", "gratis", "complimentary", "freebie", "cheapest"},
		ValidatorCallBudget:           100,
		MinLandingProducts:            3,
		SmallCatalogueThreshold:       50,
		DefaultSiteID:                 1,
		Platforms:                     []string{"google", "microsoft"},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
