package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// DeploymentOutbox implements port.CampaignDeployer by staging emitted
// campaign groups in a table. The external deployment service reads the
// outbox and owns the actual ad-platform APIs; the engine never talks to
// them directly.
type DeploymentOutbox struct {
	pool *pgxpool.Pool
}

// NewDeploymentOutbox returns an outbox writing to campaign_groups.
func NewDeploymentOutbox(pool *pgxpool.Pool) *DeploymentOutbox {
	return &DeploymentOutbox{pool: pool}
}

// Deploy stages every group of one run in a single transaction, members
// serialised as JSONB.
func (o *DeploymentOutbox) Deploy(ctx context.Context, runID string, groups []domain.CampaignGroup) error {
	tx, err := o.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	for _, g := range groups {
		var members []byte
		members, err = json.Marshal(g.Members)
		if err != nil {
			return fmt.Errorf("marshal group members: %w", err)
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO campaign_groups
                (run_id, site_id, platform, landing_path, landing_url,
                 max_bid, total_daily_cost, total_daily_revenue, mean_score,
                 members)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			runID, g.SiteID, g.Platform, g.LandingPath, g.LandingURL,
			g.MaxBid, g.TotalDailyCost, g.TotalDailyRevenue, g.MeanScore,
			members)
		if err != nil {
			return err
		}
	}
	return nil
}
