package routes

import (
	"net/http"
	"time"

	"beautyspa/handlers"
	"beautyspa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the HTTP handlers the router wires up.
type HandlerBundle struct {
	Booking     *handlers.BookingHandler
	Catalog     *handlers.CatalogHandler
	Appointment *handlers.AppointmentHandler
}

// RegisterRoutes attaches all API routes to the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	api := r.Group("/api/v1")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/timeslots", hb.Catalog.ListTimeSlots)
		api.GET("/timeslots/capacity", hb.Catalog.SlotCapacity)

		booking := api.Group("/booking")
		{
			booking.POST("/session", hb.Booking.StartSession)
			booking.GET("/session/:sessionID", hb.Booking.GetSession)
			booking.PUT("/session/:sessionID/selection", hb.Booking.SetSelection)
			booking.PUT("/session/:sessionID/staff", hb.Booking.ChooseStaff)
			booking.PUT("/session/:sessionID/customer", hb.Booking.SetCustomer)
			booking.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
			booking.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		}

		appts := api.Group("/appointments")
		{
			appts.GET("", hb.Appointment.ListByDay)
			appts.GET("/:id", hb.Appointment.GetAppointment)
			appts.POST("/:id/cancel", hb.Appointment.CancelAppointment)
		}
		api.GET("/staff/:staffId/appointments", hb.Appointment.ListByStaff)
	}
}
