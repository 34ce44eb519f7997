package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budgethero/internal/config"
	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAggregatorDisabled = errors.New("bank aggregator is not configured")
	ErrInvalidPublicToken = errors.New("public token is required")
	ErrAggregatorRequest  = errors.New("aggregator request failed")
)

// syncOverlapDays re-reads the tail of the previous window so transactions
// that were pending at the last sync are picked up once they post.
const syncOverlapDays = 7

type SyncOptions struct {
	LookbackDays int
	Interval     time.Duration
	Workers      int
	Timeout      time.Duration
}

func DefaultSyncOptions() SyncOptions {
	return SyncOptions{
		LookbackDays: 90,
		Interval:     6 * time.Hour,
		Workers:      4,
		Timeout:      2 * time.Minute,
	}
}

// SyncOptionsFrom converts the environment settings, falling back to defaults for unset values
func SyncOptionsFrom(plaidCfg config.PlaidConfig, syncCfg config.SyncConfig) SyncOptions {
	out := DefaultSyncOptions()
	if plaidCfg.LookbackDays > 0 {
		out.LookbackDays = plaidCfg.LookbackDays
	}
	if syncCfg.Interval > 0 {
		out.Interval = syncCfg.Interval
	}
	if syncCfg.Workers > 0 {
		out.Workers = syncCfg.Workers
	}
	if syncCfg.Timeout > 0 {
		out.Timeout = syncCfg.Timeout
	}
	return out
}

type SyncService struct {
	client          PlaidClientInterface
	vault           TokenVaultInterface
	itemRepo        repositories.PlaidItemRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	pipeline        ClassificationPipelineInterface
	circuitBreaker  CircuitBreakerInterface
	options         SyncOptions
	auditService    AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	workerSemaphore chan struct{}
	inFlight map[uuid.UUID]bool
	mu       sync.Mutex
	now             func() time.Time
	logger *slog.Logger
}

// NewSyncService creates the aggregator sync service. A nil client leaves
// every operation returning ErrAggregatorDisabled.
func NewSyncService(
	client PlaidClientInterface,
	vault TokenVaultInterface,
	itemRepo repositories.PlaidItemRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	pipeline ClassificationPipelineInterface,
	circuitBreaker CircuitBreakerInterface,
	options SyncOptions,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SyncServiceInterface {
	if options.Workers <= 0 {
		options.Workers = DefaultSyncOptions().Workers
	}
	if options.LookbackDays <= 0 {
		options.LookbackDays = DefaultSyncOptions().LookbackDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		client:          client,
		vault:           vault,
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		pipeline:        pipeline,
		circuitBreaker:  circuitBreaker,
		options:         options,
		auditService:    auditService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		workerSemaphore: make(chan struct{}, options.Workers),
		inFlight:        make(map[uuid.UUID]bool),
		now:             time.Now,
		logger:          logger,
	}
}

func (s *SyncService) CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.client == nil {
		return "", ErrAggregatorDisabled
	}

	var token string
	err := s.guard(func() error {
		var err error
		token, err = s.client.CreateLinkToken(ctx, userID.String())
		return err
	})
	return token, err
}

// ExchangePublicToken completes the link flow and stores the item with its
// access token sealed.
func (s *SyncService) ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangeTokenRequest) (*models.PlaidItem, error) {
	if s.client == nil {
		return nil, ErrAggregatorDisabled
	}
	if req == nil || req.PublicToken == "" {
		return nil, ErrInvalidPublicToken
	}

	var accessToken, itemID string
	if err := s.guard(func() error {
		var err error
		accessToken, itemID, err = s.client.ExchangePublicToken(ctx, req.PublicToken)
		return err
	}); err != nil {
		return nil, err
	}

	sealed, err := s.vault.Seal([]byte(accessToken))
	if err != nil {
		return nil, fmt.Errorf("failed to seal access token: %w", err)
	}

	item := &models.PlaidItem{
		UserID:          userID,
		ItemID:          itemID,
		InstitutionName: req.InstitutionName,
		AccessToken:     sealed,
		Status:          models.PlaidItemStatusActive,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	if err := s.auditService.LogPlaidItemLinked(userID, item.ID, item.InstitutionName); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionPlaidItemLinked)
	}

	return item, nil
}

func (s *SyncService) SyncItem(ctx context.Context, userID, itemID uuid.UUID) (*models.SyncResult, error) {
	if s.client == nil {
		return nil, ErrAggregatorDisabled
	}

	item, err := s.itemRepo.GetByIDForUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	return s.syncItem(ctx, item)
}

// StartScheduler syncs items that are due every interval until ctx is done.
// It blocks, so callers run it in its own goroutine.
func (s *SyncService) StartScheduler(ctx context.Context) {
	if s.client == nil || s.options.Interval <= 0 {
		s.logger.Info("aggregator sync scheduler disabled")
		return
	}

	s.logger.Info("starting aggregator sync scheduler",
		slog.Duration("interval", s.options.Interval),
		slog.Int("max_workers", s.options.Workers),
	)

	ticker := time.NewTicker(s.options.Interval)
	defer ticker.Stop()

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler shutting down, waiting for workers to complete")
			wg.Wait()
			s.logger.Info("sync scheduler stopped")
			return

		case <-ticker.C:
			s.dispatchDue(ctx, &wg)
		}
	}
}

func (s *SyncService) dispatchDue(ctx context.Context, wg *sync.WaitGroup) {
	items, err := s.itemRepo.ListDueForSync(s.now().Add(-s.options.Interval), s.options.Workers*4)
	if err != nil {
		s.logger.Error("failed to list items due for sync",
			slog.String("error", err.Error()),
		)
		return
	}

	for i := range items {
		if !s.claim(items[i].ID) {
			continue
		}
		wg.Add(1)
		go s.syncItemAsync(ctx, &items[i], wg)
	}
}

func (s *SyncService) syncItemAsync(ctx context.Context, item *models.PlaidItem, wg *sync.WaitGroup) {
	defer wg.Done()
	defer s.release(item.ID)

	select {
	case s.workerSemaphore <- struct{}{}:
	case <-ctx.Done():
		return
	}
	defer func() { <-s.workerSemaphore }()

	itemCtx := ctx
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	if _, err := s.syncItem(itemCtx, item); err != nil {
		s.logger.Error("failed to sync item",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *SyncService) claim(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[id] {
		return false
	}
	s.inFlight[id] = true
	return true
}

func (s *SyncService) release(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// syncItem fetches the item's recent transactions, drops the ones already
// stored and classifies the rest.
func (s *SyncService) syncItem(ctx context.Context, item *models.PlaidItem) (*models.SyncResult, error) {
	started := s.now()
	s.auditLogger.LogSyncStarted(ctx, item.ID)

	accessToken, err := s.vault.Open(item.AccessToken)
	if err != nil {
		return nil, s.syncFailed(ctx, item, fmt.Errorf("failed to open access token: %w", err))
	}

	start, end := s.window(item, started)
	var parsed []models.ParsedTransaction
	if err := s.guard(func() error {
		var err error
		parsed, err = s.client.GetTransactions(ctx, string(accessToken), start, end)
		return err
	}); err != nil {
		return nil, s.syncFailed(ctx, item, err)
	}

	result := &models.SyncResult{ItemID: item.ID, Fetched: len(parsed)}

	transactions, err := s.newTransactions(item, parsed, result)
	if err != nil {
		return nil, s.syncFailed(ctx, item, err)
	}
	if len(transactions) > 0 {
		if err := s.transactionRepo.CreateBatch(transactions); err != nil {
			return nil, s.syncFailed(ctx, item, err)
		}
	}
	result.Imported = len(transactions)

	syncedAt := s.now()
	result.SyncedAt = syncedAt
	item.LastSyncedAt = &syncedAt
	item.LastError = ""
	item.Status = models.PlaidItemStatusActive
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	duration := s.now().Sub(started)
	s.metrics.IncrementCounter("sync.completed", map[string]string{"status": "succeeded"})
	s.metrics.RecordProcessingTime("sync.duration", duration)
	s.auditLogger.LogSyncCompleted(ctx, result, duration.Milliseconds())
	if err := s.auditService.LogPlaidItemSynced(item.UserID, result); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionPlaidItemSynced)
	}

	return result, nil
}

func (s *SyncService) newTransactions(item *models.PlaidItem, parsed []models.ParsedTransaction, result *models.SyncResult) ([]models.Transaction, error) {
	if len(parsed) == 0 {
		return nil, nil
	}

	externalIDs := make([]string, 0, len(parsed))
	for _, p := range parsed {
		externalIDs = append(externalIDs, p.ExternalID)
	}
	existing, err := s.transactionRepo.GetExistingExternalIDs(item.UserID, externalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}

	enricher, err := s.pipeline.Prepare(item.UserID)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(parsed))
	for _, p := range parsed {
		if existing[p.ExternalID] {
			result.Duplicates++
			continue
		}

		txn := models.Transaction{
			ID:           uuid.New(),
			UserID:       item.UserID,
			Description:  p.Description,
			MerchantName: p.MerchantName,
			Amount:       p.Amount,
			Date:         p.Date,
			Type:         p.Type,
			Source:       models.TransactionSourceAggregator,
			ExternalID:   p.ExternalID,
			PlaidItemID:  &item.ID,
			Version:      1,
		}
		enricher.Enrich(&txn)
		if p.Category != "" {
			enricher.ApplyAssignedCategory(&txn, p.Category)
		}
		if txn.NeedsReview {
			result.NeedsReview++
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// window starts at the lookback horizon, or at the last sync minus the
// overlap when that is later.
func (s *SyncService) window(item *models.PlaidItem, now time.Time) (time.Time, time.Time) {
	start := now.AddDate(0, 0, -s.options.LookbackDays)
	if item.LastSyncedAt != nil {
		if resume := item.LastSyncedAt.AddDate(0, 0, -syncOverlapDays); resume.After(start) {
			start = resume
		}
	}
	return start, now
}

// guard runs an aggregator call through the circuit breaker
func (s *SyncService) guard(call func() error) error {
	if s.circuitBreaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	if err := call(); err != nil {
		s.circuitBreaker.RecordFailure()
		return fmt.Errorf("%w: %w", ErrAggregatorRequest, err)
	}
	s.circuitBreaker.RecordSuccess()
	return nil
}

func (s *SyncService) syncFailed(ctx context.Context, item *models.PlaidItem, err error) error {
	item.LastError = err.Error()
	if !errors.Is(err, ErrCircuitBreakerOpen) {
		item.Status = models.PlaidItemStatusError
	}
	if updateErr := s.itemRepo.Update(item); updateErr != nil {
		s.logger.ErrorContext(ctx, "failed to record sync error", "error", updateErr, "item_id", item.ID)
	}

	s.metrics.IncrementCounter("sync.completed", map[string]string{"status": "failed"})
	s.auditLogger.LogSyncFailed(ctx, item.ID, err.Error())
	return err
}
