package reservation

import (
	"errors"

	"id-reserve/core/logger"
	"id-reserve/core/middleware/auth"
	"id-reserve/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reservations.
type Handler struct {
	service *Service
	auth    fiber.Handler
}

// NewHandler creates a new HTTP handler. auth guards every route that
// acts on behalf of a user.
func NewHandler(service *Service, auth fiber.Handler) *Handler {
	return &Handler{service: service, auth: auth}
}

// RegisterRoutes registers the reservation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/reservations", h.HandleList)

	guarded := app.Group("", h.auth)
	guarded.Post("/reserve", h.HandleCreate)
	guarded.Delete("/reserve", h.HandleDelete)
	guarded.Get("/reserve/check", h.HandleCheck)
	guarded.Get("/reserve/find", h.HandleFind)
	guarded.Post("/reservations/:id/label", h.HandleLabel)
}

type rangeRequest struct {
	Type       int32 `json:"type"`
	RangeStart int32 `json:"range_start"`
	Length     int32 `json:"length"`
}

type labelRequest struct {
	Type  int32  `json:"type"`
	Label string `json:"label"`
}

func decisionBody(d Decision) fiber.Map {
	body := fiber.Map{"decision": d.Kind.String()}
	switch d.Kind {
	case DecisionPartial:
		body["already_owned"] = d.PartialIDs
	case DecisionInvalidLength:
		body["max_length"] = d.MaxLength
	case DecisionInvalidAlignment:
		body["required_alignment"] = d.Alignment
	}
	return body
}

func decisionStatus(d Decision) int {
	if d.Kind == DecisionValid || d.Kind == DecisionPartial {
		return fiber.StatusOK
	}
	return fiber.StatusConflict
}

func parseType(code int32) (Type, bool) {
	rt, err := TypeFromCode(code)
	if err != nil {
		return Type{}, false
	}
	return rt, true
}

// HandleCreate grants a reservation range.
// @Summary Reserve a range of IDs
// @Description Validates and grants [range_start, range_start+length) of the given type to the authenticated user.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body rangeRequest true "Range to reserve"
// @Success 200 {object} map[string]interface{} "Decision"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]interface{} "Rejected Decision"
// @Router /reserve [post]
// @Security BearerAuth
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req rangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	rt, ok := parseType(req.Type)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}

	decision, err := h.service.CreateReservation(c.Context(), auth.UserID(c), rt, req.RangeStart, req.Length)
	if err != nil {
		l.Error("create reservation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.Status(decisionStatus(decision)).JSON(decisionBody(decision))
}

// HandleDelete releases a reservation range.
// @Summary Release a range of IDs
// @Description Releases [range_start, range_start+length) held by the authenticated user. Releasing the middle of a range splits it.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body rangeRequest true "Range to release"
// @Success 204 "Released"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Range not fully held"
// @Router /reserve [delete]
// @Security BearerAuth
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req rangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	rt, ok := parseType(req.Type)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}

	err := h.service.DeleteReservation(c.Context(), auth.UserID(c), rt, req.RangeStart, req.Length)
	switch {
	case errors.Is(err, ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid range"})
	case errors.Is(err, ErrNotHeld):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "range includes ids you do not hold"})
	case err != nil:
		l.Error("delete reservation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCheck classifies a range without writing.
// @Summary Dry-run a reservation request
// @Description Returns the decision for reserving [start, start+length) without granting anything.
// @Tags reservations
// @Produce json
// @Param type query int true "Reservation type code"
// @Param start query int true "Range start"
// @Param length query int true "Range length"
// @Success 200 {object} map[string]interface{} "Decision"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /reserve/check [get]
// @Security BearerAuth
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rt, ok := parseType(int32(c.QueryInt("type", -1)))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}
	start := utils.ToInt32(c.Query("start"))
	length := utils.ToInt32(c.Query("length"))

	decision, err := h.service.CheckReserveRange(c.Context(), rt, start, length, auth.UserID(c))
	if err != nil {
		l.Error("check reservation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.JSON(decisionBody(decision))
}

// HandleFind suggests a free aligned range.
// @Summary Find a reservable range
// @Description Returns the lowest aligned start where the given length fits, or -1 when the request is unservable.
// @Tags reservations
// @Produce json
// @Param type query int true "Reservation type code"
// @Param length query int true "Range length"
// @Success 200 {object} map[string]interface{} "Suggested start"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /reserve/find [get]
// @Security BearerAuth
func (h *Handler) HandleFind(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rt, ok := parseType(int32(c.QueryInt("type", -1)))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}
	length := utils.ToInt32(c.Query("length"))

	start, err := h.service.FindReservableRange(c.Context(), rt, length, auth.UserID(c))
	if err != nil {
		l.Error("find reservable range failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.JSON(fiber.Map{"start": start, "length": length})
}

// HandleLabel annotates one reserved ID.
// @Summary Label a reserved ID
// @Description Attaches free text to a single ID inside one of the caller's active reservations.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body labelRequest true "Label"
// @Success 204 "Labelled"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "No covering reservation"
// @Router /reservations/{id}/label [post]
// @Security BearerAuth
func (h *Handler) HandleLabel(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req labelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	rt, ok := parseType(req.Type)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}

	err = h.service.LabelReservation(c.Context(), auth.UserID(c), rt, int32(id), req.Label)
	switch {
	case errors.Is(err, ErrNoReservation):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active reservation covers this id"})
	case err != nil:
		l.Error("label reservation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleList returns the merged namespace view.
// @Summary List a reservation namespace
// @Description Returns every reserved ID (holder, age, label) and every published ID of the given type.
// @Tags reservations
// @Produce json
// @Param type query int true "Reservation type code"
// @Success 200 {object} Listing "Namespace view"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /reservations [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rt, ok := parseType(int32(c.QueryInt("type", -1)))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown reservation type"})
	}

	listing, err := h.service.ListType(c.Context(), rt)
	if err != nil {
		l.Error("list reservations failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "operation failed, try again"})
	}
	return c.JSON(listing)
}
