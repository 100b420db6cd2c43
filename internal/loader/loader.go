package loader

import (
	"context"
	"sync"

	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
)

// Kind names one cached collection.
type Kind string

const (
	KindPosts        Kind = "posts"
	KindMarginalia   Kind = "marginalia"
	KindPostcards    Kind = "postcards"
	KindDiscussions  Kind = "discussions"
	KindContacts     Kind = "contacts"
	KindSubmissions  Kind = "submissions"
	KindFacilitators Kind = "facilitators"
	KindIdentities   Kind = "identities"
	KindPrompts      Kind = "prompts"
)

// Service fetches collections from the remote store into the snapshot.
// A failed load clears the entity's slot rather than keeping a stale view, and
// never prevents sibling loads from running.
type Service struct {
	store store.Client
	cache *cache.Snapshot

	mu          sync.RWMutex
	subscribers []func(Kind)
}

func New(st store.Client, snap *cache.Snapshot) *Service {
	return &Service{store: st, cache: snap}
}

// Subscribe registers a render hook invoked after every successful load of
// any entity. Presentation code lives entirely behind this callback.
func (s *Service) Subscribe(fn func(Kind)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Service) notify(kind Kind) {
	s.mu.RLock()
	subs := s.subscribers
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(kind)
	}
}

// load is the shared per-entity contract: fetch newest-first, replace the
// slot wholesale on success, clear it on failure.
func load[T any](ctx context.Context, s *Service, kind Kind, collection string, replace func([]T)) error {
	var records []T
	if err := s.store.List(ctx, collection, nil, true, &records); err != nil {
		logger.Get().Error().Err(err).Str("collection", collection).Msg("collection load failed, clearing view")
		replace(nil)
		return err
	}
	replace(records)
	s.notify(kind)
	return nil
}

func (s *Service) LoadPosts(ctx context.Context) error {
	return load(ctx, s, KindPosts, domain.Post{}.TableName(), s.cache.SetPosts)
}

func (s *Service) LoadMarginalia(ctx context.Context) error {
	return load(ctx, s, KindMarginalia, domain.Marginalia{}.TableName(), s.cache.SetMarginalia)
}

func (s *Service) LoadPostcards(ctx context.Context) error {
	return load(ctx, s, KindPostcards, domain.Postcard{}.TableName(), s.cache.SetPostcards)
}

func (s *Service) LoadDiscussions(ctx context.Context) error {
	return load(ctx, s, KindDiscussions, domain.Discussion{}.TableName(), s.cache.SetDiscussions)
}

func (s *Service) LoadContacts(ctx context.Context) error {
	return load(ctx, s, KindContacts, domain.ContactMessage{}.TableName(), s.cache.SetContacts)
}

func (s *Service) LoadSubmissions(ctx context.Context) error {
	return load(ctx, s, KindSubmissions, domain.TextSubmission{}.TableName(), s.cache.SetSubmissions)
}

func (s *Service) LoadFacilitators(ctx context.Context) error {
	return load(ctx, s, KindFacilitators, domain.Facilitator{}.TableName(), s.cache.SetFacilitators)
}

func (s *Service) LoadIdentities(ctx context.Context) error {
	return load(ctx, s, KindIdentities, domain.AIIdentity{}.TableName(), s.cache.SetIdentities)
}

// LoadPrompts loads the prompt collection and then derives each prompt's
// usage count from active postcards referencing it. A failure of the
// secondary postcard read leaves counts at zero but keeps the prompts.
func (s *Service) LoadPrompts(ctx context.Context) error {
	var prompts []domain.Prompt
	if err := s.store.List(ctx, domain.Prompt{}.TableName(), nil, true, &prompts); err != nil {
		logger.Get().Error().Err(err).Msg("prompt load failed, clearing view")
		s.cache.SetPrompts(nil)
		return err
	}

	var active []domain.Postcard
	if err := s.store.List(ctx, domain.Postcard{}.TableName(), store.Filters{"is_active": true}, false, &active); err != nil {
		logger.Get().Warn().Err(err).Msg("postcard usage read failed, prompt counts unset")
	} else {
		usage := make(map[string]int)
		for _, card := range active {
			if card.PromptID != nil {
				usage[*card.PromptID]++
			}
		}
		for i := range prompts {
			prompts[i].UsageCount = usage[prompts[i].ID]
		}
	}

	s.cache.SetPrompts(prompts)
	s.notify(KindPrompts)
	return nil
}

// LoadAll issues every per-entity load concurrently and waits for all of them
// before returning, so aggregation always runs over a settled snapshot.
// Individual failures are reported per kind; one failure never aborts the
// rest.
func (s *Service) LoadAll(ctx context.Context) map[Kind]error {
	loads := map[Kind]func(context.Context) error{
		KindPosts:        s.LoadPosts,
		KindMarginalia:   s.LoadMarginalia,
		KindPostcards:    s.LoadPostcards,
		KindDiscussions:  s.LoadDiscussions,
		KindContacts:     s.LoadContacts,
		KindSubmissions:  s.LoadSubmissions,
		KindFacilitators: s.LoadFacilitators,
		KindIdentities:   s.LoadIdentities,
		KindPrompts:      s.LoadPrompts,
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = make(map[Kind]error)
	)
	for kind, fn := range loads {
		wg.Add(1)
		go func(kind Kind, fn func(context.Context) error) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				mu.Lock()
				failures[kind] = err
				mu.Unlock()
			}
		}(kind, fn)
	}
	wg.Wait()
	return failures
}
