package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/flexbone/ocr-go/pkg/configs"
	controller "github.com/flexbone/ocr-go/pkg/controllers"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer) {
	app.Get("/", controller.Root(config.Server.AppName))
	app.Get("/metrics", controller.Metrics())

	// API 라우트 그룹
	api := app.Group("/api/v1")

	// 도메인별 라우트 설정
	SetupHealthRoutes(api, services)
	SetupAuthRoutes(api, services)
	SetupOCRRoutes(api, config, services)
}
