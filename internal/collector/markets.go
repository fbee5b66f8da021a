package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/api"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
)

// collectMarkets paginates open markets until the cursor drains. Any
// page failure discards everything fetched so far for the entity.
func (c *Collector) collectMarkets(ctx context.Context, stamp model.Stamp) ([]model.MarketRecord, EntityResult, error) {
	c.logger.Info("fetching open markets")
	start := time.Now()

	var records []model.MarketRecord
	var result EntityResult
	cursor := ""

	for {
		resp, err := c.rest.GetMarkets(ctx, api.GetMarketsOptions{
			Limit:  c.cfg.MarketPageLimit,
			Cursor: cursor,
			Status: "open",
		})
		if err != nil {
			return nil, EntityResult{}, fmt.Errorf("fetch markets page %d: %w", result.Pages+1, err)
		}

		result.Pages++
		for i := range resp.Markets {
			rec := resp.Markets[i].ToRecord(stamp)
			if err := rec.Validate(); err != nil {
				result.Skipped++
				c.logger.Warn("skipping market row",
					"error", err,
					"page", result.Pages,
				)
				continue
			}
			records = append(records, rec)
		}

		c.logger.Info("fetched markets page",
			"page", result.Pages,
			"page_rows", len(resp.Markets),
			"total_rows", len(records),
		)

		if resp.Cursor == "" {
			break
		}
		if result.Pages >= c.cfg.MaxPages {
			c.logger.Warn("market pagination stopped at page cap", "pages", result.Pages)
			break
		}
		cursor = resp.Cursor
	}

	result.Rows = len(records)
	c.logger.Info("markets collection complete",
		"rows", result.Rows,
		"skipped", result.Skipped,
		"pages", result.Pages,
		"duration", time.Since(start),
	)

	return records, result, nil
}
