// @title           Kanban API
// @version         1.0
// @description     REST API канбан-доски: пользователи, колонки, карточки и комментарии
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Введите "Bearer" и токен через пробел
package main

import (
	"kanban/internal/api"
	"kanban/internal/app/config"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	if err := api.StartServer(cfg); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
