package routes

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/flexbone/ocr-go/pkg/controllers"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
)

// SetupAuthRoutes는 인증 관련 라우트를 설정합니다
func SetupAuthRoutes(api fiber.Router, services *_interface.ServiceContainer) {
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login(services.AuthService))
}
