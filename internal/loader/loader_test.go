package loader

import (
	"context"
	"testing"

	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of store.Client
type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, collection string, filters store.Filters, newestFirst bool, dest any) error {
	args := m.Called(collection, filters, newestFirst, dest)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, collection string, id string, patch store.Patch) error {
	args := m.Called(collection, id, patch)
	return args.Error(0)
}

func (m *MockStore) UpdateWhere(ctx context.Context, collection string, filters store.Filters, patch store.Patch) error {
	args := m.Called(collection, filters, patch)
	return args.Error(0)
}

func (m *MockStore) Insert(ctx context.Context, collection string, record any) error {
	args := m.Called(collection, record)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, collection string, filters store.Filters) error {
	args := m.Called(collection, filters)
	return args.Error(0)
}

func listInto[T any](records []T) func(mock.Arguments) {
	return func(args mock.Arguments) {
		dest := args.Get(3).(*[]T)
		*dest = records
	}
}

func TestLoadPostsPopulatesCacheNewestFirst(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	posts := []domain.Post{{ID: "p2"}, {ID: "p1"}}
	ms.On("List", "posts", store.Filters(nil), true, mock.Anything).Run(listInto(posts)).Return(nil).Once()

	err := svc.LoadPosts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, posts, snap.Posts())
	ms.AssertExpectations(t)
}

func TestLoadFailureClearsSlotOnly(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	// A previously loaded view must not survive a failed refresh.
	snap.SetPosts([]domain.Post{{ID: "stale"}})
	snap.SetDiscussions([]domain.Discussion{{ID: "d1"}})
	ms.On("List", "posts", mock.Anything, true, mock.Anything).Return(assert.AnError).Once()

	err := svc.LoadPosts(context.Background())

	assert.Error(t, err)
	assert.Empty(t, snap.Posts())
	// Sibling slots are untouched.
	assert.Len(t, snap.Discussions(), 1)
}

func TestLoadNotifiesSubscribers(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	var rendered []Kind
	svc.Subscribe(func(kind Kind) { rendered = append(rendered, kind) })

	ms.On("List", "contact_messages", mock.Anything, true, mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.LoadContacts(context.Background()))
	assert.Equal(t, []Kind{KindContacts}, rendered)

	// A failed load renders nothing.
	ms.On("List", "posts", mock.Anything, true, mock.Anything).Return(assert.AnError).Once()
	assert.Error(t, svc.LoadPosts(context.Background()))
	assert.Equal(t, []Kind{KindContacts}, rendered)
}

func TestLoadPromptsDerivesUsageCounts(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	prompts := []domain.Prompt{{ID: "pr1", IsActive: true}, {ID: "pr2"}}
	pr1 := "pr1"
	cards := []domain.Postcard{
		{ID: "c1", PromptID: &pr1, IsActive: true},
		{ID: "c2", PromptID: &pr1, IsActive: true},
		{ID: "c3", PromptID: nil, IsActive: true},
	}
	ms.On("List", "prompts", store.Filters(nil), true, mock.Anything).Run(listInto(prompts)).Return(nil).Once()
	ms.On("List", "postcards", store.Filters{"is_active": true}, false, mock.Anything).Run(listInto(cards)).Return(nil).Once()

	err := svc.LoadPrompts(context.Background())

	assert.NoError(t, err)
	loaded := snap.Prompts()
	assert.Len(t, loaded, 2)
	assert.Equal(t, 2, loaded[0].UsageCount)
	assert.Equal(t, 0, loaded[1].UsageCount)
}

func TestLoadPromptsKeepsPromptsWhenUsageReadFails(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	prompts := []domain.Prompt{{ID: "pr1"}}
	ms.On("List", "prompts", mock.Anything, true, mock.Anything).Run(listInto(prompts)).Return(nil).Once()
	ms.On("List", "postcards", mock.Anything, false, mock.Anything).Return(assert.AnError).Once()

	err := svc.LoadPrompts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, snap.Prompts(), 1)
	assert.Equal(t, 0, snap.Prompts()[0].UsageCount)
}

func TestLoadAllRunsEveryLoaderDespiteFailures(t *testing.T) {
	ms := new(MockStore)
	snap := cache.New()
	svc := New(ms, snap)

	// Posts and discussions fail; everything else succeeds empty.
	ms.On("List", "posts", mock.Anything, true, mock.Anything).Return(assert.AnError).Once()
	ms.On("List", "discussions", mock.Anything, true, mock.Anything).Return(assert.AnError).Once()
	ms.On("List", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	failures := svc.LoadAll(context.Background())

	assert.Len(t, failures, 2)
	assert.Contains(t, failures, KindPosts)
	assert.Contains(t, failures, KindDiscussions)
	// All nine loaders ran regardless; submissions slot exists and is empty.
	assert.Empty(t, snap.Submissions())
}
