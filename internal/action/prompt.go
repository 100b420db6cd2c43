package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
)

// deactivateActivePrompts is the first half of the single-active sequence.
// It is best-effort: the store offers no transaction across the two steps, so
// a concurrent activation from another session can leave two active rows or
// zero. The race window is accepted and documented rather than papered over.
func (d *Dispatcher) deactivateActivePrompts(ctx context.Context, report *Report) {
	filters := store.Filters{"is_active": true}
	if err := d.store.UpdateWhere(ctx, domain.Prompt{}.TableName(), filters, store.Patch{"is_active": false}); err != nil {
		logger.Get().Warn().Err(err).Msg("prompt deactivate-all failed, active set may exceed one")
		report.warn(fmt.Sprintf("could not deactivate existing prompts: %v", err))
	}
}

// CreatePrompt inserts a new prompt as the active one, deactivating all
// currently active prompts first.
func (d *Dispatcher) CreatePrompt(ctx context.Context, text string) (*Report, error) {
	const action = "prompt.create"
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, common.ErrInvalidInput
	}

	report := newReport(action)
	d.deactivateActivePrompts(ctx, report)

	record := domain.Prompt{
		ID:       d.newID(),
		Prompt:   trimmed,
		IsActive: true,
	}
	if err := d.store.Insert(ctx, domain.Prompt{}.TableName(), &record); err != nil {
		return nil, d.fail(action, err)
	}

	d.finish(ctx, action, d.loaders.LoadPrompts)
	return report, nil
}

// ActivatePrompt makes the target prompt the single active one via the same
// deactivate-all-then-activate sequence.
func (d *Dispatcher) ActivatePrompt(ctx context.Context, id string) (*Report, error) {
	if _, ok := d.cache.PromptByID(id); !ok {
		return nil, common.ErrNotFound
	}
	const action = "prompt.activate"

	report := newReport(action)
	d.deactivateActivePrompts(ctx, report)

	if err := d.store.Update(ctx, domain.Prompt{}.TableName(), id, store.Patch{"is_active": true}); err != nil {
		return nil, d.fail(action, err)
	}

	d.finish(ctx, action, d.loaders.LoadPrompts)
	return report, nil
}

// DeactivatePrompt turns the target prompt off, leaving no active prompt.
// Confirmation is required since postcard writers lose their prompt.
func (d *Dispatcher) DeactivatePrompt(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.PromptByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	const action = "prompt.deactivate"

	if err := d.store.Update(ctx, domain.Prompt{}.TableName(), id, store.Patch{"is_active": false}); err != nil {
		return nil, d.fail(action, err)
	}

	d.finish(ctx, action, d.loaders.LoadPrompts)
	return newReport(action), nil
}
