package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// InventoryChecker implements port.InventoryChecker against the product
// catalogue. It answers how many active products the page behind a landing
// key would list. The engine budgets and caches calls; this adapter just
// counts.
type InventoryChecker struct {
	pool *pgxpool.Pool
}

// NewInventoryChecker returns a checker counting products in the catalogue.
func NewInventoryChecker(pool *pgxpool.Pool) *InventoryChecker {
	return &InventoryChecker{pool: pool}
}

// CheckInventory counts active products matching the key's destination,
// category and free-text query on the key's site.
func (c *InventoryChecker) CheckInventory(ctx context.Context, key port.LandingKey) (domain.InventoryResult, error) {
	query := `SELECT count(*) FROM products WHERE site_id = $1 AND active`
	args := []any{key.SiteID}

	if d := strings.TrimSpace(key.Destination); d != "" {
		args = append(args, "%"+strings.ToLower(d)+"%")
		query += ` AND lower(destination) LIKE $` + strconv.Itoa(len(args))
	}
	if cat := strings.TrimSpace(key.Category); cat != "" {
		args = append(args, "%"+strings.ToLower(cat)+"%")
		query += ` AND lower(category) LIKE $` + strconv.Itoa(len(args))
	}
	if q := strings.TrimSpace(key.Query); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		query += ` AND lower(title) LIKE $` + strconv.Itoa(len(args))
	}

	var count int
	if err := c.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return domain.InventoryResult{}, err
	}
	return domain.InventoryResult{Valid: count > 0, ProductCount: count}, nil
}
