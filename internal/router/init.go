package router

import (
	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/internal/container"
	pginfra "github.com/yudhapratama/portfolio-api/internal/infrastructure/postgres"
	handlers "github.com/yudhapratama/portfolio-api/internal/interface/http"
	"github.com/yudhapratama/portfolio-api/internal/router/modules"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

func buildContentService() *application.ContentService {
	pool := container.GetPGPool()
	return &application.ContentService{
		Hero:           pginfra.NewHeroRepository(pool),
		Contact:        pginfra.NewContactRepository(pool),
		Education:      pginfra.NewEducationRepository(pool),
		Certifications: pginfra.NewCertificationRepository(pool),
		Projects:       pginfra.NewProjectRepository(pool),
		Services:       pginfra.NewServiceRepository(pool),
		GCS:            container.GetGCS(),
		GCSBucket:      container.GetConfig().GCSBucket,
		Logger:         container.GetLogger(),
	}
}

func buildAuthService() *application.AuthService {
	return &application.AuthService{
		Repo:   pginfra.NewAdminUserRepository(container.GetPGPool()),
		JWT:    container.GetJWT(),
		Redis:  container.GetRedis(),
		Logger: container.GetLogger(),
	}
}

func buildBlogService() *application.BlogService {
	return &application.BlogService{
		Repo:    pginfra.NewBlogRepository(container.GetPGPool()),
		ES:      container.GetES(),
		ESIndex: container.GetConfig().ESPostsIndex,
		Logger:  container.GetLogger(),
	}
}

func buildTodoService() *application.TodoService {
	svc := &application.TodoService{
		Repo:   pginfra.NewTodoRepository(container.GetPGPool()),
		Logger: container.GetLogger(),
	}
	if pub := container.GetRabbitPub(); pub != nil {
		svc.Pub = pub
	}
	return svc
}

func buildAssistantService() *application.AssistantService {
	return &application.AssistantService{
		Generator: container.GetGenAI(),
		Mailer:    container.GetMailgun(),
		Logger:    container.GetLogger(),
	}
}

// InitModules wires all feature modules into the registry. Called once at
// startup after the container singletons are set.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	cfg := container.GetConfig()
	jwt := container.GetJWT()
	cookie := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	contentSvc := buildContentService()

	authHandler := handlers.NewAuthHandler(buildAuthService(), cookie, logger)
	contentHandler := handlers.NewContentHandler(contentSvc, logger)
	portfolioHandler := handlers.NewPortfolioHandler(contentSvc, logger)
	uploadHandler := handlers.NewUploadHandler(contentSvc, logger)
	blogHandler := handlers.NewBlogHandler(buildBlogService(), logger)
	todoHandler := handlers.NewTodoHandler(buildTodoService(), logger)
	assistantHandler := handlers.NewAssistantHandler(buildAssistantService(), logger)

	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewContentModule(contentHandler, portfolioHandler, uploadHandler, jwt))
	r.Add(modules.NewBlogModule(blogHandler, jwt))
	r.Add(modules.NewTodoModule(todoHandler, jwt))
	r.AddRoot(modules.NewAssistantModule(assistantHandler))
}
