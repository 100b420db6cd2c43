package action

import (
	"context"
	"fmt"

	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
)

// cascadeStep is one ordered delete of the facilitator cascade. Only the
// final step is required; earlier failures are collected and the cascade
// continues.
type cascadeStep struct {
	name       string
	collection string
	filters    store.Filters
	required   bool
}

// DeleteFacilitator hard-deletes a facilitator and everything it exclusively
// owns, in dependency order: notifications, subscriptions, AI identities,
// then the facilitator row itself. A failure before the final step leaves
// partially cascaded children behind, which is reported as a warning; a
// failed final step fails the whole action even though children may already
// be gone.
func (d *Dispatcher) DeleteFacilitator(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.FacilitatorByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	const action = "facilitator.delete"

	byOwner := store.Filters{"facilitator_id": id}
	steps := []cascadeStep{
		{name: "notifications", collection: domain.FacilitatorNotification{}.TableName(), filters: byOwner, required: false},
		{name: "subscriptions", collection: domain.FacilitatorSubscription{}.TableName(), filters: byOwner, required: false},
		{name: "ai identities", collection: domain.AIIdentity{}.TableName(), filters: byOwner, required: false},
		{name: "facilitator", collection: domain.Facilitator{}.TableName(), filters: store.Filters{"id": id}, required: true},
	}

	report := newReport(action)
	for _, step := range steps {
		err := d.store.Delete(ctx, step.collection, step.filters)
		if err == nil {
			continue
		}
		if step.required {
			logger.Get().Error().Err(err).Str("facilitator_id", id).Msg("facilitator delete failed after cascade, orphaned child state possible")
			return nil, d.fail(action, fmt.Errorf("delete facilitator %s: %w", id, err))
		}
		logger.Get().Warn().Err(err).Str("facilitator_id", id).Str("step", step.name).Msg("cascade step failed, continuing")
		report.warn(fmt.Sprintf("cascade step %q failed: %v", step.name, err))
	}

	d.finish(ctx, action, d.loaders.LoadFacilitators, d.loaders.LoadIdentities)
	return report, nil
}
