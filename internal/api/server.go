package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/festiconf/billetterie-api/docs"
	v1 "github.com/festiconf/billetterie-api/internal/api/handler/v1"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/config"
	"github.com/festiconf/billetterie-api/internal/repository"
	"github.com/festiconf/billetterie-api/internal/repository/dao"
	"github.com/festiconf/billetterie-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	authHandler       *v1.AuthHandler
	cartHandler       *v1.CartHandler
	ticketHandler     *v1.TicketHandler
	conferenceHandler *v1.ConferenceHandler
	planningHandler   *v1.PlanningHandler
	adminHandler      *v1.AdminHandler
	authenticator     *middleware.Authenticator
}

func NewServer(conf *config.AppConfig, postgresDB *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)

	s := &Server{
		Config: conf,
		Router: gin.New(),
	}

	s.authenticator = middleware.NewAuthenticator(conf.API.JWTSigningKey)

	s.initAuthHandler(postgresDB)
	s.initCartHandler(postgresDB)
	s.initTicketHandler(postgresDB)
	s.initConferenceHandler(postgresDB)
	s.initPlanningHandler(postgresDB)
	s.initAdminHandler(postgresDB)

	s.MountMiddlewares()
	s.MountHandlers()

	return s
}

func (s *Server) initAuthHandler(postgresDB *gorm.DB) {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	s.authHandler = v1.NewAuthHandler(authService, userService, s.Config.API.JWTSigningKey)
}

func (s *Server) initCartHandler(postgresDB *gorm.DB) {
	cartRepo := repository.NewCartRepository(dao.NewCartDAO(postgresDB))
	s.cartHandler = v1.NewCartHandler(service.NewCartService(cartRepo))
}

func (s *Server) initTicketHandler(postgresDB *gorm.DB) {
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(postgresDB))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	s.ticketHandler = v1.NewTicketHandler(service.NewTicketService(ticketRepo, userRepo))
}

func (s *Server) initConferenceHandler(postgresDB *gorm.DB) {
	conferenceRepo := repository.NewConferenceRepository(dao.NewConferenceDAO(postgresDB))
	s.conferenceHandler = v1.NewConferenceHandler(service.NewConferenceService(conferenceRepo))
}

func (s *Server) initPlanningHandler(postgresDB *gorm.DB) {
	planningRepo := repository.NewPlanningRepository(dao.NewPlanningDAO(postgresDB))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(postgresDB))
	s.planningHandler = v1.NewPlanningHandler(service.NewPlanningService(planningRepo, ticketRepo))
}

func (s *Server) initAdminHandler(postgresDB *gorm.DB) {
	statsRepo := repository.NewStatsRepository(dao.NewStatsDAO(postgresDB))
	s.adminHandler = v1.NewAdminHandler(service.NewAdminService(statsRepo))
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers() {
	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = "/api/v1"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := s.Router.Group("/api/v1")

	auth := apiV1.Group("/auth")
	{
		auth.POST("/signup", s.authHandler.HandleSignup)
		auth.POST("/login", s.authHandler.HandleLogin)
		auth.GET("/me", s.authenticator.VerifyJWT(), s.authHandler.HandleGetMe)
	}

	conferences := apiV1.Group("/conferences")
	{
		conferences.GET("", s.authenticator.OptionalJWT(), s.conferenceHandler.HandleListConferences)
		conferences.POST("", s.authenticator.VerifyJWT(), s.conferenceHandler.HandleCreateConference)
	}

	cart := apiV1.Group("/cart", s.authenticator.VerifyJWT())
	{
		cart.GET("", s.cartHandler.HandleGetCart)
		cart.DELETE("", s.cartHandler.HandleClearCart)
		cart.POST("/items", s.cartHandler.HandleAddItem)
		cart.DELETE("/items/:id", s.cartHandler.HandleRemoveItem)
		cart.POST("/confirm", s.cartHandler.HandleConfirmCart)
	}

	tickets := apiV1.Group("/tickets", s.authenticator.VerifyJWT())
	{
		tickets.GET("", s.ticketHandler.HandleListTickets)
		tickets.POST("", s.ticketHandler.HandlePurchaseTicket)
		tickets.GET("/:id", s.ticketHandler.HandleGetTicket)
		tickets.DELETE("/:id", s.ticketHandler.HandleCancelTicket)
	}

	planning := apiV1.Group("/planning", s.authenticator.VerifyJWT())
	{
		planning.GET("", s.planningHandler.HandleListPlanning)
		planning.POST("", s.planningHandler.HandleRegister)
		planning.DELETE("/:id", s.planningHandler.HandleUnregister)
	}

	admin := apiV1.Group("/admin", s.authenticator.VerifyJWT())
	{
		admin.GET("/stats", s.adminHandler.HandleGetStats)
	}
}
