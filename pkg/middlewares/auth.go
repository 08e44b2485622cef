package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
)

// 인증된 사용자 이름을 보관하는 로컬 키
const CurrentUserKey = "currentUser"

// Auth 미들웨어는 Bearer 토큰을 검증합니다.
// 설정에서 인증이 꺼져 있으면 검사 없이 통과시킵니다.
func Auth(authService _interface.AuthService, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, structure.NewAuthenticationError("Missing bearer token"))
		}

		username, appErr := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if appErr != nil {
			return unauthorized(c, appErr)
		}

		c.Locals(CurrentUserKey, username)
		return c.Next()
	}
}

// unauthorized는 인증 실패 봉투를 반환합니다
func unauthorized(c *fiber.Ctx, appErr *structure.AppError) error {
	return c.Status(appErr.StatusCode).JSON(response.Error{
		Success: false,
		Error: response.ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		Metadata: response.Metadata{
			RequestID:        GetRequestID(c),
			ProcessingTimeMs: 0,
		},
	})
}
