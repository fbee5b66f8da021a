package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/api"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
)

// collectEvents paginates open events until the cursor drains. Any
// page failure discards everything fetched so far for the entity.
func (c *Collector) collectEvents(ctx context.Context, stamp model.Stamp) ([]model.EventRecord, EntityResult, error) {
	c.logger.Info("fetching open events")
	start := time.Now()

	var records []model.EventRecord
	var result EntityResult
	cursor := ""

	for {
		resp, err := c.rest.GetEvents(ctx, api.GetEventsOptions{
			Limit:  c.cfg.EventPageLimit,
			Cursor: cursor,
			Status: "open",
		})
		if err != nil {
			return nil, EntityResult{}, fmt.Errorf("fetch events page %d: %w", result.Pages+1, err)
		}

		result.Pages++
		for i := range resp.Events {
			rec := resp.Events[i].ToRecord(stamp)
			if err := rec.Validate(); err != nil {
				result.Skipped++
				c.logger.Warn("skipping event row",
					"error", err,
					"page", result.Pages,
				)
				continue
			}
			records = append(records, rec)
		}

		c.logger.Info("fetched events page",
			"page", result.Pages,
			"page_rows", len(resp.Events),
			"total_rows", len(records),
		)

		if resp.Cursor == "" {
			break
		}
		if result.Pages >= c.cfg.MaxPages {
			c.logger.Warn("event pagination stopped at page cap", "pages", result.Pages)
			break
		}
		cursor = resp.Cursor
	}

	result.Rows = len(records)
	c.logger.Info("events collection complete",
		"rows", result.Rows,
		"skipped", result.Skipped,
		"pages", result.Pages,
		"duration", time.Since(start),
	)

	return records, result, nil
}
