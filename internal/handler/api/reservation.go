package api

import (
	"errors"
	"net/http"
	"time"

	"breakfast-deals/internal/domain/deal"
	reqdto "breakfast-deals/internal/handler/dto/request"
	resdto "breakfast-deals/internal/handler/dto/response"
	"breakfast-deals/internal/handler/httperr"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/usecase/commands"
	"breakfast-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	q        queries.ReservationQueries
	catalog  queries.CatalogQueries
	clock    clock.Clock
	location *time.Location
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	catalog queries.CatalogQueries,
	clock clock.Clock,
	location *time.Location,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:     cmds,
		q:        q,
		catalog:  catalog,
		clock:    clock,
		location: location,
	}
}

// @Summary Create reservation
// @Description Book a time slot of a breakfast deal
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	found, err := h.catalog.DealByID(c.Request.Context(), req.DealID)
	if err != nil {
		if errors.Is(err, deal.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if !found.Value.HasTimeSlot(req.TimeSlot) {
		httperr.AbortWithError(c, http.StatusBadRequest, deal.ErrUnknownTimeSlot, "Invalid time slot", gin.H{
			"timeSlots": found.Value.TimeSlots,
		})
		return
	}

	res, err := h.cmds.BookReservation(c.Request.Context(), req.ToParams(found.Value))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is fully booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromReservations(h.q.ListAll(c.Request.Context())))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	res, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, commands.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.cmds.CancelReservation(c.Request.Context(), id)
	if !ok {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reservation", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.CancelReservationResponse{ID: id, Cancelled: true})
}

// @Summary Time slot availability
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Param time_slot query string true "Time slot label"
// @Param date query string false "Date as YYYY-MM-DD or RFC 3339; defaults to today"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /deals/{id}/availability [get]
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := query.ParseDate(h.location, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.SlotAvailability(c.Request.Context(), c.Param("id"), query.TimeSlot, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailability(view))
}

// @Summary List reservations of a deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {array} resdto.ReservationResponse
// @Router /deals/{id}/reservations [get]
func (h *ReservationHandler) ListDealReservations(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromReservations(h.q.ListForDeal(c.Request.Context(), c.Param("id"))))
}
