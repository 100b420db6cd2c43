package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhaven/moderation-backend/internal/action"
	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/loader"
	"github.com/quillhaven/moderation-backend/internal/stats"
	"github.com/quillhaven/moderation-backend/internal/view"
)

// ConsoleHandler exposes the moderation console over JSON. All semantics live
// in the loader/action/stats/view packages; this layer only parses requests
// and maps errors to status codes.
type ConsoleHandler struct {
	cache      *cache.Snapshot
	loaders    *loader.Service
	dispatcher *action.Dispatcher
}

func NewConsoleHandler(snap *cache.Snapshot, loaders *loader.Service, dispatcher *action.Dispatcher) *ConsoleHandler {
	return &ConsoleHandler{cache: snap, loaders: loaders, dispatcher: dispatcher}
}

func selector(c *gin.Context) view.Selector {
	if raw := c.Query("filter"); raw != "" {
		return view.Selector(raw)
	}
	return view.SelectAll
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

func respond(c *gin.Context, report *action.Report, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "record not present in current view")
	case errors.Is(err, common.ErrConfirmRequired):
		common.ErrorResponse(c, http.StatusPreconditionFailed, "confirmation required, retry with confirm=true")
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "invalid input")
	case err != nil:
		common.ErrorResponse(c, http.StatusInternalServerError, "action failed")
	default:
		common.SuccessWithWarnings(c, gin.H{"action": report.Action}, report.Warnings)
	}
}

// ---- collection views ----

func (h *ConsoleHandler) ListPosts(c *gin.Context) {
	common.SuccessResponse(c, view.Posts(h.cache.Posts(), selector(c)))
}

func (h *ConsoleHandler) ListMarginalia(c *gin.Context) {
	common.SuccessResponse(c, view.Marginalia(h.cache.Marginalia(), selector(c)))
}

func (h *ConsoleHandler) ListPostcards(c *gin.Context) {
	common.SuccessResponse(c, view.Postcards(h.cache.Postcards(), selector(c)))
}

func (h *ConsoleHandler) ListDiscussions(c *gin.Context) {
	common.SuccessResponse(c, view.Discussions(h.cache.Discussions(), selector(c)))
}

func (h *ConsoleHandler) ListContacts(c *gin.Context) {
	common.SuccessResponse(c, view.Contacts(h.cache.Contacts(), selector(c)))
}

func (h *ConsoleHandler) ListSubmissions(c *gin.Context) {
	common.SuccessResponse(c, view.Submissions(h.cache.Submissions(), selector(c)))
}

func (h *ConsoleHandler) ListFacilitators(c *gin.Context) {
	common.SuccessResponse(c, h.cache.Facilitators())
}

func (h *ConsoleHandler) ListPrompts(c *gin.Context) {
	common.SuccessResponse(c, h.cache.Prompts())
}

// ---- actions ----

func (h *ConsoleHandler) HidePost(c *gin.Context) {
	report, err := h.dispatcher.HidePost(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

func (h *ConsoleHandler) RestorePost(c *gin.Context) {
	report, err := h.dispatcher.RestorePost(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

type noteRequest struct {
	Note string `json:"note"`
}

func (h *ConsoleHandler) SetPostNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}
	report, err := h.dispatcher.SetPostNote(c.Request.Context(), c.Param("id"), req.Note)
	respond(c, report, err)
}

func (h *ConsoleHandler) HideMarginalia(c *gin.Context) {
	report, err := h.dispatcher.HideMarginalia(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

func (h *ConsoleHandler) RestoreMarginalia(c *gin.Context) {
	report, err := h.dispatcher.RestoreMarginalia(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

func (h *ConsoleHandler) SetMarginaliaNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid body")
		return
	}
	report, err := h.dispatcher.SetMarginaliaNote(c.Request.Context(), c.Param("id"), req.Note)
	respond(c, report, err)
}

func (h *ConsoleHandler) HidePostcard(c *gin.Context) {
	report, err := h.dispatcher.HidePostcard(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

func (h *ConsoleHandler) RestorePostcard(c *gin.Context) {
	report, err := h.dispatcher.RestorePostcard(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

func (h *ConsoleHandler) ActivateDiscussion(c *gin.Context) {
	report, err := h.dispatcher.ActivateDiscussion(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

func (h *ConsoleHandler) DeactivateDiscussion(c *gin.Context) {
	report, err := h.dispatcher.DeactivateDiscussion(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

func (h *ConsoleHandler) AddressContact(c *gin.Context) {
	report, err := h.dispatcher.SetContactAddressed(c.Request.Context(), c.Param("id"), true)
	respond(c, report, err)
}

func (h *ConsoleHandler) UnaddressContact(c *gin.Context) {
	report, err := h.dispatcher.SetContactAddressed(c.Request.Context(), c.Param("id"), false)
	respond(c, report, err)
}

func (h *ConsoleHandler) ApproveSubmission(c *gin.Context) {
	report, err := h.dispatcher.ApproveSubmission(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

func (h *ConsoleHandler) RejectSubmission(c *gin.Context) {
	report, err := h.dispatcher.RejectSubmission(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

type promptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *ConsoleHandler) CreatePrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "prompt text is required")
		return
	}
	report, err := h.dispatcher.CreatePrompt(c.Request.Context(), req.Prompt)
	respond(c, report, err)
}

func (h *ConsoleHandler) ActivatePrompt(c *gin.Context) {
	report, err := h.dispatcher.ActivatePrompt(c.Request.Context(), c.Param("id"))
	respond(c, report, err)
}

func (h *ConsoleHandler) DeactivatePrompt(c *gin.Context) {
	report, err := h.dispatcher.DeactivatePrompt(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

func (h *ConsoleHandler) DeleteFacilitator(c *gin.Context) {
	report, err := h.dispatcher.DeleteFacilitator(c.Request.Context(), c.Param("id"), confirmed(c))
	respond(c, report, err)
}

// ---- stats and reload ----

func (h *ConsoleHandler) Stats(c *gin.Context) {
	common.SuccessResponse(c, stats.Compute(h.cache))
}

// Reload handles POST /reload: full concurrent refresh of every collection.
// Per-collection failures are reported but never abort the rest.
func (h *ConsoleHandler) Reload(c *gin.Context) {
	failures := h.loaders.LoadAll(c.Request.Context())
	failed := make(map[string]string, len(failures))
	for kind, err := range failures {
		failed[string(kind)] = err.Error()
	}
	common.SuccessResponse(c, gin.H{
		"reloaded": len(failures) == 0,
		"failed":   failed,
		"stats":    stats.Compute(h.cache),
	})
}
