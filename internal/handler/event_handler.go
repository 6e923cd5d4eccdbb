package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"eventhub/internal/middleware"
	"eventhub/internal/service"
)

// EventHandler handles event CRUD endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventCreateRequest represents an event creation request.
type EventCreateRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"omitempty,max=1000"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	ImageURL    string    `json:"image_url"`
}

// EventUpdateRequest represents a partial event update; absent fields keep
// their stored values.
type EventUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	ImageURL    *string    `json:"image_url"`
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} model.Event
// @Failure 401 {object} errors.ErrorResponse
// @Router /events/ [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.eventService.ListEvents(c.Request().Context(), skip, limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventCreateRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /events/ [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return invalidToken()
	}

	event, err := h.eventService.CreateEvent(c.Request().Context(), service.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		ImageURL:    req.ImageURL,
	}, user.ID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventUpdateRequest true "Fields to change"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return invalidRequest("invalid event id")
	}

	var req EventUpdateRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	event, err := h.eventService.UpdateEvent(c.Request().Context(), uint(id), service.EventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event (admin only)
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return invalidRequest("invalid event id")
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
