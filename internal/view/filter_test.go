package view

import (
	"testing"

	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func threePosts() []domain.Post {
	return []domain.Post{
		{ID: "p1", IsActive: true},
		{ID: "p2", IsActive: false},
		{ID: "p3", IsActive: true},
	}
}

func TestPostsSelectors(t *testing.T) {
	posts := threePosts()

	all := Posts(posts, SelectAll)
	assert.Len(t, all, 3)
	// Original order preserved.
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p3", all[2].ID)

	hidden := Posts(posts, SelectHidden)
	assert.Len(t, hidden, 1)
	assert.Equal(t, "p2", hidden[0].ID)

	active := Posts(posts, SelectActive)
	assert.Len(t, active, 2)
	assert.Equal(t, "p1", active[0].ID)
	assert.Equal(t, "p3", active[1].ID)
}

func TestFiltersAreIdempotent(t *testing.T) {
	posts := threePosts()

	first := Posts(posts, SelectActive)
	second := Posts(posts, SelectActive)

	assert.Equal(t, first, second)
	// The input is never mutated.
	assert.Equal(t, threePosts(), posts)
}

func TestUnknownSelectorFallsBackToAll(t *testing.T) {
	posts := threePosts()
	assert.Len(t, Posts(posts, Selector("bogus")), 3)
}

func TestSubmissionSelectors(t *testing.T) {
	subs := []domain.TextSubmission{
		{ID: "s1", Status: domain.SubmissionPending},
		{ID: "s2", Status: domain.SubmissionApproved},
		{ID: "s3", Status: domain.SubmissionRejected},
		{ID: "s4", Status: domain.SubmissionPending},
	}

	assert.Len(t, Submissions(subs, SelectAll), 4)
	assert.Len(t, Submissions(subs, SelectPending), 2)
	assert.Len(t, Submissions(subs, SelectApproved), 1)
	assert.Len(t, Submissions(subs, SelectRejected), 1)
}

func TestContactSelectors(t *testing.T) {
	contacts := []domain.ContactMessage{
		{ID: "c1", IsAddressed: false},
		{ID: "c2", IsAddressed: true},
	}

	assert.Len(t, Contacts(contacts, SelectAll), 2)

	pending := Contacts(contacts, SelectPending)
	assert.Len(t, pending, 1)
	assert.Equal(t, "c1", pending[0].ID)

	addressed := Contacts(contacts, SelectAddressed)
	assert.Len(t, addressed, 1)
	assert.Equal(t, "c2", addressed[0].ID)
}

func TestEmptyInputYieldsEmptyOutput(t *testing.T) {
	assert.Empty(t, Posts(nil, SelectActive))
	assert.Empty(t, Marginalia(nil, SelectHidden))
	assert.Empty(t, Postcards(nil, SelectAll))
	assert.Empty(t, Discussions(nil, SelectActive))
}
