package action

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
)

// ApproveSubmission marks a text submission approved and mirrors it into the
// published texts collection. The status change is the primary write; a
// failed publish insert is surfaced as a warning and never rolled back, so an
// approved-but-unpublished submission is a visible inconsistency the operator
// resolves manually.
func (d *Dispatcher) ApproveSubmission(ctx context.Context, id string) (*Report, error) {
	sub, ok := d.cache.SubmissionByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	const action = "submission.approve"

	patch := store.Patch{
		"status":      domain.SubmissionApproved,
		"reviewed_at": d.now(),
	}
	if err := d.store.Update(ctx, domain.TextSubmission{}.TableName(), id, patch); err != nil {
		return nil, d.fail(action, err)
	}

	report := newReport(action)
	published := domain.Text{
		ID:       d.newID(),
		Title:    sub.Title,
		Author:   sub.Author,
		Content:  sub.Content,
		Category: sub.Category,
		Source:   sub.Source,
	}
	if err := d.store.Insert(ctx, domain.Text{}.TableName(), &published); err != nil {
		logger.Get().Warn().Err(err).Str("submission_id", id).Msg("publish insert failed, submission approved but unpublished")
		report.warn(fmt.Sprintf("submission approved but text publish failed: %v", err))
	}

	d.finish(ctx, action, d.loaders.LoadSubmissions)
	return report, nil
}

// RejectSubmission marks a submission rejected. Rejecting a currently
// approved submission also removes its published text, matched by the
// (title, author) pair; that unpublish step asks for confirmation and its
// failure is reported without reverting the status change. A pending
// submission is rejected with no text deletion attempted.
func (d *Dispatcher) RejectSubmission(ctx context.Context, id string, confirmed bool) (*Report, error) {
	sub, ok := d.cache.SubmissionByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	wasApproved := sub.Status == domain.SubmissionApproved
	if wasApproved && !confirmed {
		return nil, common.ErrConfirmRequired
	}
	const action = "submission.reject"

	patch := store.Patch{
		"status":      domain.SubmissionRejected,
		"reviewed_at": d.now(),
	}
	if err := d.store.Update(ctx, domain.TextSubmission{}.TableName(), id, patch); err != nil {
		return nil, d.fail(action, err)
	}

	report := newReport(action)
	if wasApproved {
		filters := store.Filters{"title": sub.Title, "author": sub.Author}
		if err := d.store.Delete(ctx, domain.Text{}.TableName(), filters); err != nil {
			logger.Get().Warn().Err(err).Str("submission_id", id).Msg("unpublish delete failed, rejected submission still published")
			report.warn(fmt.Sprintf("submission rejected but published text removal failed: %v", err))
		}
	}

	d.finish(ctx, action, d.loaders.LoadSubmissions)
	return report, nil
}

// NewRecordID returns a fresh uuid string; the default id source for
// console-created records.
func NewRecordID() string {
	return uuid.New().String()
}
