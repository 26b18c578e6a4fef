package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor account endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.Doctor.RegisterHandler)
		api.POST("/login", hb.Doctor.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/me", hb.Doctor.MeHandler)
		api.PUT("/fcm-token", hb.Doctor.UpdateFCMTokenHandler)
	}
}

// RegisterAvailabilityRoutes registers weekly schedule endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/week", hb.Availability.GetWeekHandler)
		api.GET("/day/:date", hb.Availability.GetDayHandler)
		api.POST("/toggle-slot", hb.Availability.ToggleSlotHandler)
		api.POST("/toggle-day", hb.Availability.ToggleDayOffHandler)
		api.PUT("/week", hb.Availability.SaveWeekHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.POST("", hb.Appointment.CreateHandler)
		api.GET("", hb.Appointment.ListHandler)
		api.GET("/search", hb.Appointment.SearchHandler)
		api.GET("/:id", hb.Appointment.GetHandler)
		api.PATCH("/:id", hb.Appointment.UpdateHandler)
		api.DELETE("/:id", hb.Appointment.DeleteHandler)
		api.POST("/:id/meet-link", hb.Appointment.MeetLinkHandler)
	}
}

// RegisterPatientRoutes registers patient roster endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.POST("", hb.Patient.CreateHandler)
		api.GET("", hb.Patient.ListHandler)
		api.GET("/:id", hb.Patient.GetHandler)
		api.PUT("/:id", hb.Patient.UpdateHandler)
		api.DELETE("/:id", hb.Patient.DeleteHandler)
		api.PUT("/:id/fcm-token", hb.Patient.UpdateFCMTokenHandler)
	}
}

// RegisterDocumentRoutes registers patient record document endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.POST("", hb.Document.UploadHandler)
		api.GET("", hb.Document.BrowseHandler)
		api.GET("/patient/:patientId", hb.Document.ForPatientHandler)
		api.GET("/:id/download", hb.Document.DownloadURLHandler)
		api.DELETE("/:id", hb.Document.DeleteHandler)
	}
}

// RegisterDashboardRoutes registers the dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/stats", hb.Dashboard.StatsHandler)
	}
}

// RegisterAssistantRoutes registers medical assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.POST("/chat", hb.Assistant.ChatHandler)
		api.GET("/greeting", hb.Assistant.GreetingHandler)
		api.DELETE("/context", hb.Assistant.ResetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Clinicore"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
