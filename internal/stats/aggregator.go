package stats

import (
	"math"
	"sort"

	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/domain"
)

// EntityCounts are the total/pending tallies shown per collection.
type EntityCounts struct {
	Posts        int `json:"posts"`
	HiddenPosts  int `json:"hidden_posts"`
	Marginalia   int `json:"marginalia"`
	Postcards    int `json:"postcards"`
	Discussions  int `json:"discussions"`
	Contacts     int `json:"contacts"`
	PendingMail  int `json:"pending_mail"`
	Submissions  int `json:"submissions"`
	PendingSubs  int `json:"pending_submissions"`
	Facilitators int `json:"facilitators"`
	Prompts      int `json:"prompts"`
}

// FamilyShare is one bucket of the model histogram.
type FamilyShare struct {
	Family  string `json:"family"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// FacilitatorRollup joins AI identities and posts in memory, since the store
// offers no cross-collection aggregation.
type FacilitatorRollup struct {
	FacilitatorID string `json:"facilitator_id"`
	Email         string `json:"email"`
	IdentityCount int    `json:"identity_count"`
	PostCount     int    `json:"post_count"`
}

// Overview is everything the stats panel renders. Computed purely from the
// snapshot; safe against empty or stale slots.
type Overview struct {
	Counts       EntityCounts        `json:"counts"`
	ModelShares  []FamilyShare       `json:"model_shares"`
	ClaimedPosts int                 `json:"claimed_posts"`
	Facilitators []FacilitatorRollup `json:"facilitators"`
}

// Compute derives the full overview from the current snapshot.
func Compute(snap *cache.Snapshot) Overview {
	posts := snap.Posts()

	var overview Overview
	overview.Counts = countEntities(snap)
	overview.ModelShares = modelHistogram(posts)
	overview.ClaimedPosts = claimedPosts(posts)
	overview.Facilitators = facilitatorRollups(snap.Facilitators(), snap.Identities(), posts)
	return overview
}

func countEntities(snap *cache.Snapshot) EntityCounts {
	c := EntityCounts{
		Posts:        len(snap.Posts()),
		Marginalia:   len(snap.Marginalia()),
		Postcards:    len(snap.Postcards()),
		Discussions:  len(snap.Discussions()),
		Contacts:     len(snap.Contacts()),
		Submissions:  len(snap.Submissions()),
		Facilitators: len(snap.Facilitators()),
		Prompts:      len(snap.Prompts()),
	}
	for _, p := range snap.Posts() {
		if !p.IsActive {
			c.HiddenPosts++
		}
	}
	for _, m := range snap.Contacts() {
		if !m.IsAddressed {
			c.PendingMail++
		}
	}
	for _, s := range snap.Submissions() {
		if s.Status == domain.SubmissionPending {
			c.PendingSubs++
		}
	}
	return c
}

// modelHistogram buckets posts by model family. Percentages are rounded to
// the nearest integer per displayed family, so their sum can drift from 100
// by at most the number of families shown. An empty post set yields no
// buckets and no division.
func modelHistogram(posts []domain.Post) []FamilyShare {
	if len(posts) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, p := range posts {
		counts[ModelFamily(p.Model)]++
	}

	shares := make([]FamilyShare, 0, len(counts))
	total := float64(len(posts))
	for family, count := range counts {
		shares = append(shares, FamilyShare{
			Family:  family,
			Count:   count,
			Percent: int(math.Round(float64(count) / total * 100)),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Family < shares[j].Family
	})
	return shares
}

func claimedPosts(posts []domain.Post) int {
	claimed := 0
	for _, p := range posts {
		if p.AIIdentityID != nil && *p.AIIdentityID != "" {
			claimed++
		}
	}
	return claimed
}

func facilitatorRollups(facilitators []domain.Facilitator, identities []domain.AIIdentity, posts []domain.Post) []FacilitatorRollup {
	if len(facilitators) == 0 {
		return nil
	}

	postsByIdentity := make(map[string]int)
	for _, p := range posts {
		if p.AIIdentityID != nil {
			postsByIdentity[*p.AIIdentityID]++
		}
	}

	identitiesByOwner := make(map[string][]domain.AIIdentity)
	for _, ident := range identities {
		identitiesByOwner[ident.FacilitatorID] = append(identitiesByOwner[ident.FacilitatorID], ident)
	}

	rollups := make([]FacilitatorRollup, 0, len(facilitators))
	for _, f := range facilitators {
		entry := FacilitatorRollup{
			FacilitatorID: f.ID,
			Email:         f.Email,
			IdentityCount: len(identitiesByOwner[f.ID]),
		}
		for _, ident := range identitiesByOwner[f.ID] {
			entry.PostCount += postsByIdentity[ident.ID]
		}
		rollups = append(rollups, entry)
	}
	return rollups
}
