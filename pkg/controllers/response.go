package controller

import (
	"github.com/gofiber/fiber/v2"
	middleware "github.com/flexbone/ocr-go/pkg/middlewares"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
)

// errorResponse는 실패 응답 봉투를 작성합니다.
// 모든 실패 응답은 항상 올바른 형식의 JSON 문서입니다.
func errorResponse(c *fiber.Ctx, appErr *structure.AppError, processingTimeMs int64) error {
	return c.Status(appErr.StatusCode).JSON(response.Error{
		Success: false,
		Error: response.ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		Metadata: response.Metadata{
			RequestID:        middleware.GetRequestID(c),
			ProcessingTimeMs: processingTimeMs,
		},
	})
}
