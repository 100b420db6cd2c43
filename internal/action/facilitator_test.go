package action

import (
	"context"
	"testing"

	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func seedFacilitator(env *testEnv) {
	env.cache.SetFacilitators([]domain.Facilitator{{ID: "f1", Email: "f1@example.com"}})
}

func TestDeleteFacilitatorRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	seedFacilitator(env)

	_, err := env.dispatcher.DeleteFacilitator(context.Background(), "f1", false)

	assert.ErrorIs(t, err, common.ErrConfirmRequired)
	env.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteFacilitatorCascadeOrder(t *testing.T) {
	env := newTestEnv(t)
	seedFacilitator(env)
	allowReloads(env.store)

	var order []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, name) }
	}
	byOwner := store.Filters{"facilitator_id": "f1"}
	env.store.On("Delete", "facilitator_notifications", byOwner).Run(record("notifications")).Return(nil).Once()
	env.store.On("Delete", "facilitator_subscriptions", byOwner).Run(record("subscriptions")).Return(nil).Once()
	env.store.On("Delete", "ai_identities", byOwner).Run(record("identities")).Return(nil).Once()
	env.store.On("Delete", "facilitators", store.Filters{"id": "f1"}).Run(record("facilitator")).Return(nil).Once()

	report, err := env.dispatcher.DeleteFacilitator(context.Background(), "f1", true)

	assert.NoError(t, err)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, []string{"notifications", "subscriptions", "identities", "facilitator"}, order)
	env.store.AssertExpectations(t)
}

func TestDeleteFacilitatorSwallowsEarlyStepFailures(t *testing.T) {
	env := newTestEnv(t)
	seedFacilitator(env)
	allowReloads(env.store)

	env.store.On("Delete", "facilitator_notifications", mock.Anything).Return(assert.AnError).Once()
	env.store.On("Delete", "facilitator_subscriptions", mock.Anything).Return(assert.AnError).Once()
	env.store.On("Delete", "ai_identities", mock.Anything).Return(nil).Once()
	env.store.On("Delete", "facilitators", mock.Anything).Return(nil).Once()

	report, err := env.dispatcher.DeleteFacilitator(context.Background(), "f1", true)

	// The cascade continues past non-required failures; final step governs
	// reported success.
	assert.NoError(t, err)
	assert.Len(t, report.Warnings, 2)
	env.store.AssertExpectations(t)
}

func TestDeleteFacilitatorFinalStepFailureIsFatal(t *testing.T) {
	env := newTestEnv(t)
	seedFacilitator(env)

	env.store.On("Delete", "facilitator_notifications", mock.Anything).Return(nil).Once()
	env.store.On("Delete", "facilitator_subscriptions", mock.Anything).Return(nil).Once()
	env.store.On("Delete", "ai_identities", mock.Anything).Return(nil).Once()
	env.store.On("Delete", "facilitators", mock.Anything).Return(assert.AnError).Once()

	_, err := env.dispatcher.DeleteFacilitator(context.Background(), "f1", true)

	assert.Error(t, err)
	assert.Equal(t, 0, env.statsRuns)
	env.store.AssertExpectations(t)
}
