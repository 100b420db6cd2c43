package stats

import (
	"testing"

	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestModelFamilyClassifier(t *testing.T) {
	cases := map[string]string{
		"claude-opus-4":        "claude",
		"Claude 3.5 Sonnet":    "claude",
		"gpt-4o":               "gpt",
		"ChatGPT":              "gpt",
		"gemini-1.5-pro":       "gemini",
		"Llama-3-70B":          "llama",
		"mistral-large":        "mistral",
		"deepseek-r1":          "deepseek",
		"some-local-finetune":  ModelFamilyOther,
		"":                     ModelFamilyOther,
	}
	for model, want := range cases {
		assert.Equal(t, want, ModelFamily(model), "model %q", model)
	}
}

func TestComputeEmptySnapshot(t *testing.T) {
	overview := Compute(cache.New())

	assert.Zero(t, overview.Counts.Posts)
	assert.Zero(t, overview.ClaimedPosts)
	assert.Empty(t, overview.ModelShares)
	assert.Empty(t, overview.Facilitators)
}

func TestModelHistogramPercentagesSumNear100(t *testing.T) {
	snap := cache.New()
	snap.SetPosts([]domain.Post{
		{ID: "1", Model: "claude-opus-4"},
		{ID: "2", Model: "claude-sonnet-4"},
		{ID: "3", Model: "gpt-4o"},
		{ID: "4", Model: "gemini-1.5"},
		{ID: "5", Model: "homebrew-model"},
		{ID: "6", Model: "claude-haiku"},
		{ID: "7", Model: "gpt-4.1"},
	})

	overview := Compute(snap)

	total := 0
	sum := 0
	for _, share := range overview.ModelShares {
		total += share.Count
		sum += share.Percent
	}
	assert.Equal(t, 7, total)
	// Rounding drift is bounded by the number of displayed families.
	assert.InDelta(t, 100, sum, float64(len(overview.ModelShares)))
	// Sorted by count descending: claude leads with 3 of 7.
	assert.Equal(t, "claude", overview.ModelShares[0].Family)
	assert.Equal(t, 3, overview.ModelShares[0].Count)
	assert.Equal(t, 43, overview.ModelShares[0].Percent)
}

func TestCountsAndClaimedPosts(t *testing.T) {
	snap := cache.New()
	ident := "i1"
	snap.SetPosts([]domain.Post{
		{ID: "1", IsActive: true, AIIdentityID: &ident},
		{ID: "2", IsActive: false},
	})
	snap.SetContacts([]domain.ContactMessage{
		{ID: "c1", IsAddressed: true},
		{ID: "c2", IsAddressed: false},
	})
	snap.SetSubmissions([]domain.TextSubmission{
		{ID: "s1", Status: domain.SubmissionPending},
		{ID: "s2", Status: domain.SubmissionApproved},
	})

	overview := Compute(snap)

	assert.Equal(t, 2, overview.Counts.Posts)
	assert.Equal(t, 1, overview.Counts.HiddenPosts)
	assert.Equal(t, 1, overview.Counts.PendingMail)
	assert.Equal(t, 1, overview.Counts.PendingSubs)
	assert.Equal(t, 1, overview.ClaimedPosts)
}

func TestFacilitatorRollupJoinsIdentitiesAndPosts(t *testing.T) {
	snap := cache.New()
	snap.SetFacilitators([]domain.Facilitator{
		{ID: "f1", Email: "one@example.com"},
		{ID: "f2", Email: "two@example.com"},
	})
	snap.SetIdentities([]domain.AIIdentity{
		{ID: "i1", FacilitatorID: "f1"},
		{ID: "i2", FacilitatorID: "f1"},
		{ID: "i3", FacilitatorID: "f2"},
	})
	i1, i2 := "i1", "i2"
	snap.SetPosts([]domain.Post{
		{ID: "p1", AIIdentityID: &i1},
		{ID: "p2", AIIdentityID: &i1},
		{ID: "p3", AIIdentityID: &i2},
		{ID: "p4"},
	})

	overview := Compute(snap)

	assert.Len(t, overview.Facilitators, 2)
	assert.Equal(t, "f1", overview.Facilitators[0].FacilitatorID)
	assert.Equal(t, 2, overview.Facilitators[0].IdentityCount)
	assert.Equal(t, 3, overview.Facilitators[0].PostCount)
	assert.Equal(t, 1, overview.Facilitators[1].IdentityCount)
	assert.Equal(t, 0, overview.Facilitators[1].PostCount)
}

func TestComputeIsPureOverSameSnapshot(t *testing.T) {
	snap := cache.New()
	snap.SetPosts([]domain.Post{{ID: "1", Model: "claude"}})

	first := Compute(snap)
	second := Compute(snap)

	assert.Equal(t, first, second)
}
