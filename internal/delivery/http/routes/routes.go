package routes

import (
	"log"

	"talentgate/internal/config"
	"talentgate/internal/database"
	"talentgate/internal/delivery/http/handler"
	v1 "talentgate/internal/delivery/http/routes/v1"
	"talentgate/internal/storage"
	"talentgate/internal/usecase"
	"talentgate/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.Cache
	Store  *storage.DiskStore
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(d.DB).RegisterRoutes(app)

	if d.Store != nil {
		app.Use("/uploads", static.New(d.Store.Dir()))
	}

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, d.Logger)
		app.Get("/ws/applications", wsHandler.HandleApplicationsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: d.Config,
		DB:     d.DB,
		Cache:  d.Cache,
		Store:  d.Store,
		Hub:    d.Hub,
		Logger: d.Logger,
	})
}
