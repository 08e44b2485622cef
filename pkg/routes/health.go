package routes

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/flexbone/ocr-go/pkg/controllers"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
)

// SetupHealthRoutes는 상태 확인 관련 라우트를 설정합니다
func SetupHealthRoutes(api fiber.Router, services *_interface.ServiceContainer) {
	api.Get("/health", controller.Health(services.OcrCache))
}
