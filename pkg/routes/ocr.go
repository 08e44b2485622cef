package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/flexbone/ocr-go/pkg/configs"
	controller "github.com/flexbone/ocr-go/pkg/controllers"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	middleware "github.com/flexbone/ocr-go/pkg/middlewares"
)

// SetupOCRRoutes는 OCR 관련 라우트를 설정합니다.
// 레이트리밋과 인증 미들웨어는 OCR 라우트에만 적용됩니다.
func SetupOCRRoutes(api fiber.Router, config *configs.EnvConfig, services *_interface.ServiceContainer) {
	ocr := api.Group("/ocr")
	ocr.Use(middleware.RateLimit(config))
	ocr.Use(middleware.Auth(services.AuthService, config.Auth.Enabled))

	ocr.Post("/extract", controller.Extract(services.PipelineService))
	ocr.Post("/batch", controller.Batch(config, services.BatchService))
}
