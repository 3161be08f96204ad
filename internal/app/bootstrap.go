package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talentgate/internal/config"
	"talentgate/internal/database/migration"
	"talentgate/internal/database/seeder"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	seeders := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.AdminSeeder{Admin: cfg.Admin},
	}}
	if err := seeders.Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run seeders: %w", err)
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: int(cfg.Upload.MaxBytes) * 2,
	})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger, cfg.App.IsDevelopment()).Middleware())

	routes.Register(f, routes.Deps{
		Config: cfg,
		DB:     c.DB,
		Cache:  c.Cache,
		Store:  c.Store,
		Hub:    c.Hub,
		Logger: c.Logger,
	})

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
