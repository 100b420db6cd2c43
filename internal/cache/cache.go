package cache

import (
	"sync"

	"github.com/quillhaven/moderation-backend/internal/domain"
)

// slot holds one collection snapshot. Each slot has its own lock so a reload
// of one entity never blocks readers or writers of another.
type slot[T any] struct {
	mu      sync.RWMutex
	records []T
}

func (s *slot[T]) replace(records []T) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

func (s *slot[T]) get() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Snapshot is the session-owned view of the remote collections. Loaders
// replace whole slots; readers receive whatever the last successful (or
// failed, hence empty) load produced. Returned slices are never mutated in
// place, only swapped out.
type Snapshot struct {
	posts         slot[domain.Post]
	marginalia    slot[domain.Marginalia]
	postcards     slot[domain.Postcard]
	discussions   slot[domain.Discussion]
	contacts      slot[domain.ContactMessage]
	submissions   slot[domain.TextSubmission]
	facilitators  slot[domain.Facilitator]
	identities    slot[domain.AIIdentity]
	prompts       slot[domain.Prompt]
}

func New() *Snapshot {
	return &Snapshot{}
}

func (s *Snapshot) SetPosts(records []domain.Post)               { s.posts.replace(records) }
func (s *Snapshot) Posts() []domain.Post                         { return s.posts.get() }
func (s *Snapshot) SetMarginalia(records []domain.Marginalia)    { s.marginalia.replace(records) }
func (s *Snapshot) Marginalia() []domain.Marginalia              { return s.marginalia.get() }
func (s *Snapshot) SetPostcards(records []domain.Postcard)       { s.postcards.replace(records) }
func (s *Snapshot) Postcards() []domain.Postcard                 { return s.postcards.get() }
func (s *Snapshot) SetDiscussions(records []domain.Discussion)   { s.discussions.replace(records) }
func (s *Snapshot) Discussions() []domain.Discussion             { return s.discussions.get() }
func (s *Snapshot) SetContacts(records []domain.ContactMessage)  { s.contacts.replace(records) }
func (s *Snapshot) Contacts() []domain.ContactMessage            { return s.contacts.get() }
func (s *Snapshot) SetSubmissions(records []domain.TextSubmission) {
	s.submissions.replace(records)
}
func (s *Snapshot) Submissions() []domain.TextSubmission        { return s.submissions.get() }
func (s *Snapshot) SetFacilitators(records []domain.Facilitator) { s.facilitators.replace(records) }
func (s *Snapshot) Facilitators() []domain.Facilitator           { return s.facilitators.get() }
func (s *Snapshot) SetIdentities(records []domain.AIIdentity)    { s.identities.replace(records) }
func (s *Snapshot) Identities() []domain.AIIdentity              { return s.identities.get() }
func (s *Snapshot) SetPrompts(records []domain.Prompt)           { s.prompts.replace(records) }
func (s *Snapshot) Prompts() []domain.Prompt                     { return s.prompts.get() }

// Lookup helpers used by the action dispatcher to validate targets against
// the current snapshot before issuing writes.

func (s *Snapshot) PostByID(id string) (domain.Post, bool) {
	return findByID(s.Posts(), func(r domain.Post) string { return r.ID })(id)
}

func (s *Snapshot) MarginaliaByID(id string) (domain.Marginalia, bool) {
	return findByID(s.Marginalia(), func(r domain.Marginalia) string { return r.ID })(id)
}

func (s *Snapshot) PostcardByID(id string) (domain.Postcard, bool) {
	return findByID(s.Postcards(), func(r domain.Postcard) string { return r.ID })(id)
}

func (s *Snapshot) DiscussionByID(id string) (domain.Discussion, bool) {
	return findByID(s.Discussions(), func(r domain.Discussion) string { return r.ID })(id)
}

func (s *Snapshot) ContactByID(id string) (domain.ContactMessage, bool) {
	return findByID(s.Contacts(), func(r domain.ContactMessage) string { return r.ID })(id)
}

func (s *Snapshot) SubmissionByID(id string) (domain.TextSubmission, bool) {
	return findByID(s.Submissions(), func(r domain.TextSubmission) string { return r.ID })(id)
}

func (s *Snapshot) FacilitatorByID(id string) (domain.Facilitator, bool) {
	return findByID(s.Facilitators(), func(r domain.Facilitator) string { return r.ID })(id)
}

func (s *Snapshot) PromptByID(id string) (domain.Prompt, bool) {
	return findByID(s.Prompts(), func(r domain.Prompt) string { return r.ID })(id)
}

func findByID[T any](records []T, id func(T) string) func(string) (T, bool) {
	return func(want string) (T, bool) {
		for _, r := range records {
			if id(r) == want {
				return r, true
			}
		}
		var zero T
		return zero, false
	}
}
