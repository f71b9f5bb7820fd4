package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-scheduler/internal/catalog"
	"github.com/BruksfildServices01/spa-scheduler/internal/config"
	"github.com/BruksfildServices01/spa-scheduler/internal/handlers"
	"github.com/BruksfildServices01/spa-scheduler/internal/notify"
	"github.com/BruksfildServices01/spa-scheduler/internal/store"
	ucBooking "github.com/BruksfildServices01/spa-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	cat *catalog.Catalog,
	st store.Store,
	dispatcher *notify.Dispatcher,
) {

	// ======================================================
	// USE CASES
	// ======================================================
	listTimeslotsUC := ucBooking.NewListTimeslots(cat, st)
	submitBookingUC := ucBooking.NewSubmitBooking(cat, st, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(cat)
	timeslotHandler := handlers.NewTimeslotHandler(listTimeslotsUC)
	bookingHandler := handlers.NewBookingHandler(submitBookingUC, !cfg.IsProduction())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/timeslots", timeslotHandler.List)
		api.POST("/bookings", bookingHandler.Create)
	}
}
