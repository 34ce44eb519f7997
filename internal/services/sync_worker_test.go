package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncItemAsync_CancelledWhileWaitingForWorker(t *testing.T) {
	svc := NewSyncService(nil, nil, nil, nil, nil, nil, SyncOptions{Workers: 1}, nil, nil, nil, nil).(*SyncService)

	// Occupy the only worker slot.
	svc.workerSemaphore <- struct{}{}

	item := &models.PlaidItem{ID: uuid.New()}
	require.True(t, svc.claim(item.ID))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go svc.syncItemAsync(ctx, item, &wg)

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stayed blocked after cancellation")
	}

	assert.Len(t, svc.workerSemaphore, 1, "cancelled worker must not take or free a slot")
	assert.True(t, svc.claim(item.ID), "item should be released for the next tick")
}
