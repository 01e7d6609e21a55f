package routes

import (
	"net/http"
	"time"

	"github.com/LovationAdmin/holiday-api/config"
	"github.com/LovationAdmin/holiday-api/handlers"
	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.0.0"

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth       *services.AuthService
	Members    *services.MemberService
	Trips      *services.TripService
	Itinerary  *services.ItineraryService
	Activities *services.ActivityService
	Travel     *services.TravelService
	Budget     *services.BudgetService
}

// NewRouter builds the engine with the ambient middleware and every route.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.FrontendURL)))
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	wsHandler := handlers.NewWSHandler(svc.Trips)

	v1 := router.Group("/api/v1")
	SetupAuthRoutes(v1, svc.Auth, cfg.RateLimitPerMinute)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(svc.Auth))

	admin := protected.Group("/")
	admin.Use(middleware.RequireAdmin())

	protected.GET("/ws/trips/:id", wsHandler.HandleWS)
	SetupUserRoutes(protected, admin, svc)
	SetupTripRoutes(protected, admin, svc, wsHandler)

	return router
}

func corsConfig(frontendURL string) cors.Config {
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	allowedOrigins := []string{frontendURL}
	utils.SafeInfo("CORS: allowing origins %v", allowedOrigins)

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, auth *services.AuthService, rateLimit int) {
	authHandler := &handlers.AuthHandler{Auth: auth}

	public := rg.Group("/auth")
	public.Use(middleware.RateLimiter(rateLimit))
	public.POST("/signup", authHandler.Signup)
	public.POST("/signin", authHandler.Signin)
	public.POST("/logout", authHandler.Logout)

	me := rg.Group("/auth")
	me.Use(middleware.AuthMiddleware(auth))
	me.GET("/me", authHandler.Me)
}

// SetupUserRoutes sets up account and roster routes.
func SetupUserRoutes(protected, admin *gin.RouterGroup, svc Services) {
	userHandler := &handlers.UserHandler{Auth: svc.Auth}
	protected.GET("/user/profile", userHandler.GetProfile)
	protected.POST("/user/2fa/setup", userHandler.SetupTOTP)
	protected.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	protected.POST("/user/2fa/disable", userHandler.DisableTOTP)

	memberHandler := &handlers.MemberHandler{Members: svc.Members}
	protected.GET("/members", memberHandler.List)
	admin.PUT("/members/:id/role", memberHandler.SetRole)
}

// SetupTripRoutes sets up trip content routes. Reads and votes/comments need a
// member; every other mutation needs an admin.
func SetupTripRoutes(protected, admin *gin.RouterGroup, svc Services, ws *handlers.WSHandler) {
	trips := &handlers.TripHandler{Trips: svc.Trips, WS: ws}
	protected.GET("/trips", trips.List)
	protected.GET("/trips/current", trips.Current)
	protected.GET("/trips/:id", trips.Get)
	admin.POST("/trips", trips.Create)
	admin.PUT("/trips/:id", trips.Update)
	admin.DELETE("/trips/:id", trips.Delete)

	itinerary := &handlers.ItineraryHandler{Itinerary: svc.Itinerary, WS: ws}
	protected.GET("/trips/:id/itinerary", itinerary.List)
	admin.POST("/trips/:id/itinerary", itinerary.Create)
	admin.DELETE("/itinerary/:id", itinerary.Delete)

	activities := &handlers.ActivityHandler{Activities: svc.Activities, WS: ws}
	protected.GET("/trips/:id/activities", activities.List)
	admin.POST("/trips/:id/activities", activities.Create)
	protected.POST("/activities/:id/vote", activities.Vote)
	protected.POST("/activities/:id/comment", activities.Comment)
	admin.DELETE("/activities/:id", activities.Delete)

	travel := &handlers.TravelHandler{Travel: svc.Travel, WS: ws}
	protected.GET("/trips/:id/hotels", travel.ListHotels)
	admin.POST("/trips/:id/hotels", travel.CreateHotel)
	admin.PUT("/hotels/:id", travel.UpdateHotel)
	admin.DELETE("/hotels/:id", travel.DeleteHotel)
	protected.GET("/trips/:id/flights", travel.ListFlights)
	admin.POST("/trips/:id/flights", travel.CreateFlight)
	admin.PUT("/flights/:id", travel.UpdateFlight)
	admin.DELETE("/flights/:id", travel.DeleteFlight)

	budget := &handlers.BudgetHandler{Budget: svc.Budget}
	protected.GET("/trips/:id/budget", budget.Get)
}
