package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/spa-scheduler/internal/usecase/booking"
)

// Slot lists are cheap to recompute, so responses stay fresh for a
// minute and revalidate in the background after that.
const timeslotCacheControl = "public, s-maxage=60, stale-while-revalidate=300"

// ======================================================
// HANDLER
// ======================================================

type TimeslotHandler struct {
	list *ucBooking.ListTimeslots
}

func NewTimeslotHandler(list *ucBooking.ListTimeslots) *TimeslotHandler {
	return &TimeslotHandler{list: list}
}

// ======================================================
// RESPONSES
// ======================================================

type TimeslotListResponse struct {
	Timeslots []models.Timeslot `json:"timeslots"`
}

// ======================================================
// LIST
// ======================================================

func (h *TimeslotHandler) List(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		httperr.NotFound(c, "Service ID required")
		return
	}

	slots, err := h.list.Execute(c.Request.Context(), serviceID)
	if err != nil {
		httperr.Internal(c, "Failed to load timeslots", "")
		return
	}

	// Static templates are never empty, so an empty list means the
	// service itself is unknown.
	if len(slots) == 0 {
		httperr.NotFound(c, "Service not found")
		return
	}

	c.Header("Cache-Control", timeslotCacheControl)
	httpresp.OK(c, TimeslotListResponse{Timeslots: slots})
}
