package action

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/loader"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
)

var actionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "moderation_actions_total",
		Help: "Total number of dispatched moderation actions",
	},
	[]string{"action", "outcome"},
)

// Dispatcher performs validated mutations against the remote store. Every
// successful action re-fetches the affected collection and then republishes
// aggregate statistics via onStats.
type Dispatcher struct {
	store   store.Client
	cache   *cache.Snapshot
	loaders *loader.Service
	onStats func()
	now     func() time.Time
	newID   func() string
}

func NewDispatcher(st store.Client, snap *cache.Snapshot, loaders *loader.Service, newID func() string, onStats func()) *Dispatcher {
	if onStats == nil {
		onStats = func() {}
	}
	return &Dispatcher{
		store:   st,
		cache:   snap,
		loaders: loaders,
		onStats: onStats,
		now:     time.Now,
		newID:   newID,
	}
}

// finish runs the targeted reload for the mutated collection and republishes
// stats. Reload failure after a committed write is the recoverable load-time
// tier: the slot is already cleared by the loader, so only log here.
func (d *Dispatcher) finish(ctx context.Context, action string, reloads ...func(context.Context) error) {
	for _, reload := range reloads {
		if err := reload(ctx); err != nil {
			logger.Get().Error().Err(err).Str("action", action).Msg("post-action reload failed")
		}
	}
	d.onStats()
	actionsTotal.WithLabelValues(action, "ok").Inc()
}

func (d *Dispatcher) fail(action string, err error) error {
	actionsTotal.WithLabelValues(action, "error").Inc()
	return err
}

// setActive flips a visibility flag on one record of a content collection.
func (d *Dispatcher) setActive(ctx context.Context, action, collection, id string, active bool, reload func(context.Context) error) (*Report, error) {
	if err := d.store.Update(ctx, collection, id, store.Patch{"is_active": active}); err != nil {
		return nil, d.fail(action, err)
	}
	d.finish(ctx, action, reload)
	return newReport(action), nil
}

// HidePost soft-deletes a post. Hiding requires operator confirmation;
// restoring does not.
func (d *Dispatcher) HidePost(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.PostByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	return d.setActive(ctx, "post.hide", domain.Post{}.TableName(), id, false, d.loaders.LoadPosts)
}

func (d *Dispatcher) RestorePost(ctx context.Context, id string) (*Report, error) {
	if _, ok := d.cache.PostByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setActive(ctx, "post.restore", domain.Post{}.TableName(), id, true, d.loaders.LoadPosts)
}

func (d *Dispatcher) HideMarginalia(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.MarginaliaByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	return d.setActive(ctx, "marginalia.hide", domain.Marginalia{}.TableName(), id, false, d.loaders.LoadMarginalia)
}

func (d *Dispatcher) RestoreMarginalia(ctx context.Context, id string) (*Report, error) {
	if _, ok := d.cache.MarginaliaByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setActive(ctx, "marginalia.restore", domain.Marginalia{}.TableName(), id, true, d.loaders.LoadMarginalia)
}

func (d *Dispatcher) HidePostcard(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.PostcardByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	return d.setActive(ctx, "postcard.hide", domain.Postcard{}.TableName(), id, false, d.loaders.LoadPostcards)
}

func (d *Dispatcher) RestorePostcard(ctx context.Context, id string) (*Report, error) {
	if _, ok := d.cache.PostcardByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setActive(ctx, "postcard.restore", domain.Postcard{}.TableName(), id, true, d.loaders.LoadPostcards)
}

// setNote stores a trimmed moderation note, or clears it when the trimmed
// value is empty. Applies to posts and marginalia only.
func (d *Dispatcher) setNote(ctx context.Context, action, collection, id, note string, reload func(context.Context) error) (*Report, error) {
	trimmed := strings.TrimSpace(note)
	patch := store.Patch{"moderation_note": nil}
	if trimmed != "" {
		patch["moderation_note"] = trimmed
	}
	if err := d.store.Update(ctx, collection, id, patch); err != nil {
		return nil, d.fail(action, err)
	}
	d.finish(ctx, action, reload)
	return newReport(action), nil
}

func (d *Dispatcher) SetPostNote(ctx context.Context, id, note string) (*Report, error) {
	if _, ok := d.cache.PostByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setNote(ctx, "post.note", domain.Post{}.TableName(), id, note, d.loaders.LoadPosts)
}

func (d *Dispatcher) SetMarginaliaNote(ctx context.Context, id, note string) (*Report, error) {
	if _, ok := d.cache.MarginaliaByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setNote(ctx, "marginalia.note", domain.Marginalia{}.TableName(), id, note, d.loaders.LoadMarginalia)
}

// ActivateDiscussion reopens a discussion; no confirmation needed.
func (d *Dispatcher) ActivateDiscussion(ctx context.Context, id string) (*Report, error) {
	if _, ok := d.cache.DiscussionByID(id); !ok {
		return nil, common.ErrNotFound
	}
	return d.setActive(ctx, "discussion.activate", domain.Discussion{}.TableName(), id, true, d.loaders.LoadDiscussions)
}

// DeactivateDiscussion closes a discussion; requires confirmation.
func (d *Dispatcher) DeactivateDiscussion(ctx context.Context, id string, confirmed bool) (*Report, error) {
	if _, ok := d.cache.DiscussionByID(id); !ok {
		return nil, common.ErrNotFound
	}
	if !confirmed {
		return nil, common.ErrConfirmRequired
	}
	return d.setActive(ctx, "discussion.deactivate", domain.Discussion{}.TableName(), id, false, d.loaders.LoadDiscussions)
}

// SetContactAddressed flips the addressed flag on a contact message. Neither
// direction asks for confirmation.
func (d *Dispatcher) SetContactAddressed(ctx context.Context, id string, addressed bool) (*Report, error) {
	if _, ok := d.cache.ContactByID(id); !ok {
		return nil, common.ErrNotFound
	}
	action := "contact.address"
	if !addressed {
		action = "contact.unaddress"
	}
	if err := d.store.Update(ctx, domain.ContactMessage{}.TableName(), id, store.Patch{"is_addressed": addressed}); err != nil {
		return nil, d.fail(action, err)
	}
	d.finish(ctx, action, d.loaders.LoadContacts)
	return newReport(action), nil
}
