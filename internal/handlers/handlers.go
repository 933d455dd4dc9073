package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/config"
	"bloodlifesaver/api/internal/middleware"
	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/repository"
	"bloodlifesaver/api/internal/service"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	auth     *service.AuthService
	donors   *service.DonorService
	requests *service.RequestService
	admin    *service.AdminService
	users    service.UserStore
	db       *pgxpool.Pool
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		auth:     service.NewAuthService(userRepo, cfg, log),
		donors:   service.NewDonorService(donorRepo, log),
		requests: service.NewRequestService(requestRepo, log),
		admin:    service.NewAdminService(statsRepo, log),
		users:    userRepo,
		db:       db,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)

	authn := middleware.Auth(h.cfg.Security.JWTSecret, h.users)

	api := engine.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)
		auth.GET("/me", authn, h.Me)

		donors := api.Group("/donors")
		donors.Use(authn)
		donors.POST("", middleware.RequireRoles(models.RoleDonor), h.RegisterDonor)
		donors.GET("", middleware.RequireRoles(models.RoleHospital, models.RoleAdmin), h.ListDonors)
		donors.GET("/blood-type/:bloodType", middleware.RequireRoles(models.RoleHospital, models.RoleAdmin), h.ListDonorsByBloodType)
		donors.GET("/:id", middleware.RequireRoles(models.RoleHospital, models.RoleAdmin), h.GetDonor)
		donors.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), h.DeleteDonor)

		requests := api.Group("/requests")
		requests.Use(authn)
		requests.POST("", middleware.RequireRoles(models.RoleHospital), h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/mine", middleware.RequireRoles(models.RoleHospital), h.ListMyRequests)
		requests.GET("/hospital/:hospitalName", middleware.RequireRoles(models.RoleHospital, models.RoleAdmin), h.ListRequestsByHospital)
		requests.GET("/:id", h.GetRequest)
		requests.PATCH("/:id/status", middleware.RequireRoles(models.RoleAdmin), h.UpdateRequestStatus)
		requests.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), h.DeleteRequest)

		admin := api.Group("/admin")
		admin.Use(authn, middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/stats", h.Stats)
		admin.GET("/blood-distribution", h.BloodDistribution)
		admin.GET("/recent-activity", h.RecentActivity)
	}
}
