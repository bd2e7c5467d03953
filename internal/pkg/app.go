package pkg

import (
	"fmt"

	"kanban/docs"
	"kanban/internal/app/config"
	"kanban/internal/app/handler"
	"kanban/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Application struct {
	Config         *config.Config
	Router         *gin.Engine
	Handler        *handler.APIHandler
	AuthMiddleware *middleware.AuthMiddleware
	Limiter        *middleware.RateLimiter
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, am *middleware.AuthMiddleware, limiter *middleware.RateLimiter) *Application {
	return &Application{
		Config:         c,
		Router:         r,
		Handler:        h,
		AuthMiddleware: am,
		Limiter:        limiter,
	}
}

// RegisterRoutes API и swagger; вынесено отдельно, чтобы роутер можно было собрать без запуска
func (a *Application) RegisterRoutes() {
	a.Handler.RegisterAPIRoutes(a.Router, a.AuthMiddleware, a.Limiter)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", a.Config.ServicePort)
	a.Router.GET("/api_docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (a *Application) RunApp() error {
	logrus.Info("Server start up")

	a.RegisterRoutes()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		return err
	}

	logrus.Info("Server down")
	return nil
}
