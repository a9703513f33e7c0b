package api

import (
	"net/http"

	"reservation-service/internal/domain/reservation"
	reqdto "reservation-service/internal/handler/dto/request"
	resdto "reservation-service/internal/handler/dto/response"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/handler/middleware"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderNotificationStatus = middleware.HeaderNotificationStatus
	notificationStatusFailed = "failed"
)

type ReservationHandler struct {
	manager usecase.ReservationManager
	// strictNotify turns a failed email into a 500 even though the record was written.
	strictNotify bool
}

func NewReservationHandler(manager usecase.ReservationManager, cfg config.NotifyConfig) *ReservationHandler {
	return &ReservationHandler{
		manager:      manager,
		strictNotify: cfg.Strict,
	}
}

// @Summary Create reservation
// @Description Book a table and send the confirmation email
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.manager.Create(c.Request.Context(), req.ToInput())
	if !h.handleResult(c, created, err) {
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary List reservations
// @Description List all reservations with their restaurant, newest date first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.manager.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Update reservation status
// @Description Overwrite the status and send the status update email
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.manager.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if !h.handleResult(c, updated, err) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(updated))
}

// @Summary Cancel reservation
// @Description Delete the reservation and send the cancellation email
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	deleted, err := h.manager.Cancel(c.Request.Context(), c.Param("id"))
	if !h.handleResult(c, deleted, err) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(deleted))
}

// handleResult reports whether the caller should write the success body.
func (h *ReservationHandler) handleResult(c *gin.Context, res *reservation.Reservation, err error) bool {
	if err == nil {
		return true
	}
	if res != nil && errs.Is(err, usecase.ErrNotificationFailed) && !h.strictNotify {
		c.Header(HeaderNotificationStatus, notificationStatusFailed)
		return true
	}
	abortWithUsecaseError(c, err)
	return false
}

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrRestaurantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Restaurant not found", nil)
	case errs.Is(err, usecase.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, usecase.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error(), nil)
	}
}
