package controller

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	request "github.com/flexbone/ocr-go/pkg/types/dtos/requests"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
)

// Login은 데모 사용자 로그인 요청을 처리하는 핸들러입니다
func Login(authService _interface.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req request.Login
		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, structure.NewAuthenticationError("Invalid login request body"), 0)
		}

		token, expiresIn, appErr := authService.Login(req.Username, req.Password)
		if appErr != nil {
			return errorResponse(c, appErr, 0)
		}

		return c.JSON(response.Token{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   expiresIn,
		})
	}
}
