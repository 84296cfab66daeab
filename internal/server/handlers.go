package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NicoEre03/habit-tracker/internal/engine"
)

// actionRequest is the flat dispatch payload: an action name plus whichever
// fields that action reads.
type actionRequest struct {
	Action      string  `json:"action"`
	Habit       string  `json:"habit"`
	Date        string  `json:"date"`
	Value       *int    `json:"value"`
	Note        *string `json:"note"`
	Periodicity string  `json:"periodicity"`
	NewName     string  `json:"newName"`
	Position    *int    `json:"position"`
}

func successBody() gin.H {
	return gin.H{"status": "success"}
}

func errorBody(msg string) gin.H {
	return gin.H{"status": "error", "message": msg}
}

func (s *Server) handleAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		observe(req.Action, "error")
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	if !s.acquire(c.Request.Context()) {
		observe(req.Action, "lock_timeout")
		c.JSON(http.StatusServiceUnavailable, errorBody("grid is busy, try again"))
		return
	}
	defer s.release()

	ctx := c.Request.Context()
	today := s.now().UTC()

	switch req.Action {
	case "read":
		grid, err := s.svc.ReadGrid(ctx, today)
		if err != nil {
			s.fail(c, req.Action, err)
			return
		}
		observe(req.Action, "success")
		c.JSON(http.StatusOK, grid.Wire())

	case "update":
		if err := s.svc.UpdateCell(ctx, req.Habit, req.Date, req.Value, req.Note, today); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "updateHabitPeriodicity":
		if err := s.svc.UpdatePeriodicity(ctx, req.Habit, req.Periodicity, today); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "saveSnapshot":
		if err := s.svc.RecordSnapshot(ctx, today); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "addHabit":
		if _, err := s.svc.AddHabit(ctx, req.Habit, req.Periodicity); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "deleteHabit":
		if err := s.svc.DeleteHabit(ctx, req.Habit); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "renameHabit":
		if err := s.svc.RenameHabit(ctx, req.Habit, req.NewName); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	case "moveHabit":
		if req.Position == nil {
			observe(req.Action, "error")
			c.JSON(http.StatusBadRequest, errorBody("position is required"))
			return
		}
		if err := s.svc.MoveHabit(ctx, req.Habit, *req.Position); err != nil {
			s.fail(c, req.Action, err)
			return
		}
		s.ok(c, req.Action)

	default:
		observe(req.Action, "error")
		c.JSON(http.StatusBadRequest, errorBody("unknown action"))
	}
}

func (s *Server) ok(c *gin.Context, action string) {
	observe(action, "success")
	c.JSON(http.StatusOK, successBody())
}

// fail maps lookup failures to a client error with the message intact and
// everything else (store faults included) to a generic response.
func (s *Server) fail(c *gin.Context, action string, err error) {
	observe(action, "error")
	switch {
	case errors.Is(err, engine.ErrHabitNotFound),
		errors.Is(err, engine.ErrDateNotFound),
		errors.Is(err, engine.ErrHabitExists):
		c.JSON(http.StatusNotFound, errorBody(err.Error()))
	default:
		s.log.Error("action failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}
