package pipeline

import (
	"context"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/collector"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/uploader"
)

// CollectStage wraps a collector as the pipeline's first stage.
func CollectStage(c *collector.Collector) Stage {
	return Stage{
		Name: "collect",
		Run: func(ctx context.Context) error {
			_, err := c.Run(ctx)
			return err
		},
	}
}

// UploadStage wraps an uploader as the pipeline's second stage.
func UploadStage(u *uploader.Uploader) Stage {
	return Stage{
		Name: "upload",
		Run: func(ctx context.Context) error {
			_, err := u.Run(ctx)
			return err
		},
	}
}
