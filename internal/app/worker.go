package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgethero/internal/events"
)

// DefaultFollowUpLookbackDays bounds the history scanned after each import
const DefaultFollowUpLookbackDays = 365

// ImportFollowUp handles import.completed: it runs recurring detection over
// the user's history and, when new merchants appear, reclassifies the batch
// so its rows pick them up. Rows were already enriched at import time.
func ImportFollowUp(svc *Services, lookbackDays int, logger *slog.Logger) events.ImportCompletedHandler {
	if lookbackDays <= 0 {
		lookbackDays = DefaultFollowUpLookbackDays
	}

	return func(ctx context.Context, msg *events.ImportCompletedMessage) error {
		at := msg.Timestamp
		if at.IsZero() {
			at = time.Now().UTC()
		}

		detected, err := svc.Recurring.AutoDetect(ctx, msg.UserID, at.AddDate(0, 0, -lookbackDays))
		if err != nil {
			return fmt.Errorf("auto-detect for batch %s: %w", msg.BatchID, err)
		}
		if len(detected) == 0 {
			logger.InfoContext(ctx, "no new recurring merchants after import", "batch_id", msg.BatchID)
			return nil
		}

		result, err := svc.Batch.ReclassifyImportBatch(ctx, msg.UserID, msg.BatchID)
		if err != nil {
			return fmt.Errorf("reclassify batch %s: %w", msg.BatchID, err)
		}

		logger.InfoContext(ctx, "import follow-up completed",
			"batch_id", msg.BatchID,
			"detected", len(detected),
			"reclassified", result.Succeeded,
			"failed", result.Failed,
		)
		return nil
	}
}
