package v1

import (
	"log"

	"talentgate/internal/config"
	"talentgate/internal/database"
	"talentgate/internal/delivery/http/handler"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/domain/user"
	"talentgate/internal/pkg/jwt"
	"talentgate/internal/repository"
	"talentgate/internal/storage"
	"talentgate/internal/usecase"
	"talentgate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.Cache
	Store  *storage.DiskStore
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	recruiterOnly := []fiber.Handler{
		authMw.Middleware(),
		authMw.RequireRole(user.RoleRecruiter, user.RoleAdmin),
	}

	userRepo := repository.NewPostgresUserRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	applicantRepo := repository.NewPostgresApplicantRepository(d.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, d.Cache, d.Logger)
	applicationUC := usecase.NewApplicationUsecase(
		applicantRepo, jobRepo, applicationRepo, ws.NewNotifier(d.Hub), d.Logger,
	)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))
	handler.NewJobHandler(jobUC).RegisterRoutes(r.Group("/jobs"), recruiterOnly...)
	handler.NewApplicationHandler(applicationUC, d.Store).RegisterRoutes(r.Group("/applications"), recruiterOnly...)
}
