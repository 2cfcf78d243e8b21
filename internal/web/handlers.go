// README: Planner page handlers: render, form updates, submit and reset.
package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripbud/internal/planner"
	"tripbud/internal/types"
)

type Handler struct {
	ctrl *planner.Controller
	log  *zap.Logger
}

func NewHandler(ctrl *planner.Controller, log *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, log: log}
}

func (h *Handler) Show(c *gin.Context) {
	snap, err := h.ctrl.Snapshot(c.Request.Context(), sessionID(c))
	if err != nil {
		h.log.Error("load planner view", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please reload the page.")
		return
	}
	c.HTML(http.StatusOK, "planner.html", newPage(snap))
}

// Form applies the posted fields, then an optional toggle or submit. Posts
// that arrive while a submission is pending change nothing.
func (h *Handler) Form(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	err := h.ctrl.Update(ctx, sid, func(v planner.View) (planner.View, error) {
		v = applyFields(v, c)
		if id := c.PostForm("toggle"); id != "" {
			next, err := planner.ToggleInterest(v, id)
			if err != nil && !errors.Is(err, planner.ErrUnknownInterest) {
				return v, err
			}
			v = next
		}
		return v, nil
	})
	switch {
	case err == nil, errors.Is(err, planner.ErrNotInForm):
	case errors.Is(err, planner.ErrSubmitInFlight):
		c.Redirect(http.StatusSeeOther, "/")
		return
	default:
		h.fail(c, "update planner view", err)
		return
	}

	if c.PostForm("action") == "submit" {
		err := h.ctrl.Submit(ctx, sid)
		switch {
		case err == nil, errors.Is(err, planner.ErrSubmitInFlight), errors.Is(err, planner.ErrNotInForm):
		default:
			h.fail(c, "submit planner view", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Reset(c *gin.Context) {
	if err := h.ctrl.Reset(c.Request.Context(), sessionID(c)); err != nil {
		h.fail(c, "reset planner view", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.String("session", sessionID(c)), zap.Error(err))
	c.String(http.StatusInternalServerError, "Something went wrong. Please reload the page.")
}

// applyFields sets every posted field. Invalid values leave the field as it was.
func applyFields(v planner.View, c *gin.Context) planner.View {
	if city, ok := c.GetPostForm("city"); ok {
		v = keep(v)(planner.SetCity(v, city))
	}
	if raw, ok := c.GetPostForm("duration"); ok {
		if days, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			v = keep(v)(planner.SetDuration(v, days))
		}
	}
	if raw, ok := c.GetPostForm("budget"); ok {
		v = keep(v)(planner.SetBudget(v, types.Budget(raw)))
	}
	if raw, ok := c.GetPostForm("travel_style"); ok {
		v = keep(v)(planner.SetTravelStyle(v, types.TravelStyle(raw)))
	}
	return v
}

func keep(prev planner.View) func(planner.View, error) planner.View {
	return func(next planner.View, err error) planner.View {
		if err != nil {
			return prev
		}
		return next
	}
}
