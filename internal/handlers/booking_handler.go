package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/spa-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	submit *ucBooking.SubmitBooking

	// exposeDetails leaks error text on 500s; development builds only.
	exposeDetails bool
}

func NewBookingHandler(submit *ucBooking.SubmitBooking, exposeDetails bool) *BookingHandler {
	return &BookingHandler{
		submit:        submit,
		exposeDetails: exposeDetails,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CreateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ServiceID string `json:"serviceId"`
	Timeslot  string `json:"timeslot"`
}

type CreateBookingResponse struct {
	Success bool                  `json:"success"`
	Booking *models.BookingRecord `json:"booking"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body we cannot parse is the unexpected path, not a
		// validation outcome.
		h.internal(c, err)
		return
	}

	record, err := h.submit.Execute(c.Request.Context(), ucBooking.SubmitBookingInput{
		ServiceID: req.ServiceID,
		SlotID:    req.Timeslot,
		Name:      req.Name,
		Email:     req.Email,
	})

	if err != nil {
		h.mapSubmitError(c, err)
		return
	}

	httpresp.Created(c, CreateBookingResponse{
		Success: true,
		Booking: record,
	})
}

func (h *BookingHandler) mapSubmitError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve.Fields)
		return
	}

	switch {
	case httperr.IsBusiness(err, "missing_service"):
		httperr.BadRequest(c, "Service ID is required")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "Service not found")
	case httperr.IsBusiness(err, "slot_not_found"):
		httperr.NotFound(c, "Timeslot not found")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "Timeslot is no longer available")
	default:
		h.internal(c, err)
	}
}

func (h *BookingHandler) internal(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("booking request failed")

	detail := ""
	if h.exposeDetails {
		detail = err.Error()
	}
	httperr.Internal(c, "Failed to process booking", detail)
}
