package router

import (
	"github.com/rizkydarmawan/goblog/internal/application"
	"github.com/rizkydarmawan/goblog/internal/container"
	pginfra "github.com/rizkydarmawan/goblog/internal/infrastructure/postgres"
	handlers "github.com/rizkydarmawan/goblog/internal/interface/http"
	"github.com/rizkydarmawan/goblog/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userSvc := application.NewUserService(
		pginfra.NewUserRepository(pool),
		container.GetJWT(),
		container.GetRedis(),
		logger,
		cfg.SessionTTL,
	)
	blogSvc := application.NewBlogService(
		pginfra.NewPostRepository(pool),
		pginfra.NewCommentRepository(pool),
		logger,
		container.GetGCS(),
		cfg.GCSBucket,
	)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	postHandler := handlers.NewPostHandler(blogSvc, logger)
	commentHandler := handlers.NewCommentHandler(blogSvc, logger)
	contactHandler := handlers.NewContactHandler(container.GetRabbitPub(), cfg, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewBlogModule(postHandler, commentHandler, container.GetJWT()))
	r.Add(modules.NewContactModule(contactHandler))
}
