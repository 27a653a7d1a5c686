package handlers

import (
	"net/http"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
	"heating_leads/internal/wizard"

	"github.com/gin-gonic/gin"
)

// EventRequest is the body of POST /api/v1/sessions/{id}/events.
type EventRequest struct {
	// One of start, answer, next, back, calculate, submit_contact, continue, reset
	Type    wizard.EventType    `json:"type" binding:"required" example:"next"`
	Answers *wizard.Answers     `json:"answers,omitempty"`
	Contact *models.ContactInfo `json:"contact,omitempty"`
}

// sessionView is the read model sent for a session.
type sessionView struct {
	Session models.Session         `json:"session"`
	Summary *models.ResultsSummary `json:"summary,omitempty"`
	Actions []wizard.EventType     `json:"actions"`
}

// publicSession drops the submitted contact details. They are written to the
// lead log once and never read back over HTTP or the stream.
func publicSession(sess models.Session) models.Session {
	sess.State.Contact = nil
	return sess
}

func viewOf(sess models.Session) sessionView {
	return sessionView{
		Session: publicSession(sess),
		Summary: wizard.Summarize(sess.State),
		Actions: wizard.AvailableEvents(sess.State),
	}
}

// @Summary      Create wizard session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  map[string]interface{}  "session, actions"
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	sess, err := h.services.Wizard.Create(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "session_create_failed", nil)
		return
	}
	c.JSON(http.StatusCreated, viewOf(sess))
}

// @Summary      Get wizard session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  map[string]interface{}  "session, summary, actions"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	sess, err := h.services.Wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "session_get_failed", nil)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

// @Summary      Dispatch wizard event
// @Description  Applies one user action. A rejected action leaves the session unchanged and returns field details plus client effects.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path   string        true  "Session ID"
// @Param        body  body   EventRequest  true  "Event payload"
// @Success      200   {object}  map[string]interface{}  "session, effects, summary, actions"
// @Failure      400   {object}  map[string]interface{}  "error, details, effects, session"
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/sessions/{id}/events [post]
func (h *Handler) dispatchEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	out, err := h.services.Wizard.Dispatch(c.Request.Context(), c.Param("id"), wizard.Event{
		Type:    req.Type,
		Answers: req.Answers,
		Contact: req.Contact,
	})
	if err != nil {
		var extra gin.H
		if apperr.Is(err, apperr.KindValidation) {
			h.log.Debugw("wizard_event_rejected", "session_id", c.Param("id"), "type", req.Type, "err", err)
			extra = gin.H{"effects": out.Effects, "session": publicSession(out.Session), "actions": out.Actions}
		}
		h.writeError(c, err, "wizard_dispatch_failed", extra)
		return
	}
	out.Session = publicSession(out.Session)
	c.JSON(http.StatusOK, out)
}
