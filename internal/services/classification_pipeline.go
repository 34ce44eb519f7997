package services

import (
	"fmt"

	"budgethero/internal/classification"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

// classificationPipeline implements ClassificationPipelineInterface
type classificationPipeline struct {
	classifier            *classification.Classifier
	categoryOverrideRepo  repositories.CategoryOverrideRepositoryInterface
	recurringOverrideRepo repositories.RecurringOverrideRepositoryInterface
	merchantRepo          repositories.RecurringMerchantRepositoryInterface
}

// NewClassificationPipeline creates a pipeline that loads a user's overrides
// and recurring merchants. A nil classifier uses the built-in rules.
func NewClassificationPipeline(
	classifier *classification.Classifier,
	categoryOverrideRepo repositories.CategoryOverrideRepositoryInterface,
	recurringOverrideRepo repositories.RecurringOverrideRepositoryInterface,
	merchantRepo repositories.RecurringMerchantRepositoryInterface,
) ClassificationPipelineInterface {
	if classifier == nil {
		classifier = classification.Default()
	}
	return &classificationPipeline{
		classifier:            classifier,
		categoryOverrideRepo:  categoryOverrideRepo,
		recurringOverrideRepo: recurringOverrideRepo,
		merchantRepo:          merchantRepo,
	}
}

// Prepare reads the user's classification state once. The returned enricher
// does no I/O and can be shared by concurrent workers.
func (p *classificationPipeline) Prepare(userID uuid.UUID) (*classification.Enricher, error) {
	categoryOverrides, err := p.categoryOverrideRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category overrides: %w", err)
	}

	recurringOverrides, err := p.recurringOverrideRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring overrides: %w", err)
	}

	merchants, err := p.merchantRepo.ListActiveForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring merchants: %w", err)
	}

	return classification.NewEnricher(
		p.classifier,
		classification.CategoryOverridesFromModels(categoryOverrides),
		classification.OverridesFromModels(recurringOverrides),
		classification.CandidatesFromMerchants(merchants),
	), nil
}
