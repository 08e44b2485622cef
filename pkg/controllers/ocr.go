package controller

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	constants "github.com/flexbone/ocr-go/pkg/types"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// Extract는 단건 이미지 텍스트 추출 요청을 처리하는 핸들러입니다
func Extract(pipeline _interface.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return errorResponse(c, structure.NewValidationError(
				constants.ERR_INVALID_FILE,
				"Multipart field 'image' is required",
				nil,
			), time.Since(start).Milliseconds())
		}

		content, err := readMultipartFile(fileHeader)
		if err != nil {
			utils.Error("ocr-controller", "업로드 파일 읽기 실패: %v", err)
			return errorResponse(c, structure.NewInvalidFileError("Failed to read uploaded file"),
				time.Since(start).Milliseconds())
		}

		outcome := pipeline.Process(c.UserContext(), fileHeader.Filename, content)
		if !outcome.Success {
			return errorResponse(c, outcome.Err, outcome.ProcessingTimeMs)
		}

		resp := response.Extract{
			Success:          true,
			Text:             outcome.Result.Text,
			Confidence:       outcome.Result.Confidence,
			ProcessingTimeMs: outcome.ProcessingTimeMs,
		}
		if resp.Text == "" {
			resp.Message = constants.NO_TEXT_FOUND_MESSAGE
		}

		return c.JSON(resp)
	}
}

// Batch는 다중 이미지 배치 추출 요청을 처리하는 핸들러입니다.
// 항목별 실패는 결과 데이터로 반환되며 HTTP 상태는 항상 200입니다.
// 파일이 없거나 상한을 넘는 경우만 요청 수준 오류가 됩니다.
func Batch(config *configs.EnvConfig, batchService _interface.BatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		form, err := c.MultipartForm()
		if err != nil {
			return errorResponse(c, structure.NewValidationError(
				constants.ERR_INVALID_FILE,
				"Multipart form with field 'images' is required",
				nil,
			), time.Since(start).Milliseconds())
		}

		files := form.File["images"]
		if len(files) == 0 {
			return errorResponse(c, structure.NewValidationError(
				constants.ERR_INVALID_FILE,
				"At least one file must be submitted in field 'images'",
				nil,
			), time.Since(start).Milliseconds())
		}
		if len(files) > config.OCR.MaxBatchImages {
			return errorResponse(c, structure.NewValidationError(
				constants.ERR_INVALID_FILE,
				fmt.Sprintf("Batch size exceeds maximum of %d images", config.OCR.MaxBatchImages),
				map[string]interface{}{
					"max_images":      config.OCR.MaxBatchImages,
					"received_images": len(files),
				},
			), time.Since(start).Milliseconds())
		}

		// 제출 순서를 유지하며 항목 구성
		items := make([]structure.BatchItem, 0, len(files))
		for _, fileHeader := range files {
			content, err := readMultipartFile(fileHeader)
			if err != nil {
				// 읽기 실패도 항목별 실패로 처리하여 다른 항목에 영향을 주지 않음
				content = nil
			}
			items = append(items, structure.BatchItem{
				Filename: fileHeader.Filename,
				Content:  content,
			})
		}

		report := batchService.RunBatch(c.UserContext(), items)

		results := make([]response.BatchItemResult, 0, len(report.Results))
		for _, outcome := range report.Results {
			item := response.BatchItemResult{
				Filename:         outcome.Filename,
				Success:          outcome.Success,
				ProcessingTimeMs: outcome.ProcessingTimeMs,
			}
			if outcome.Success {
				item.Text = outcome.Result.Text
				item.Confidence = outcome.Result.Confidence
			} else {
				item.ErrorCode = outcome.ErrorCode
				item.Error = outcome.ErrorMessage
			}
			results = append(results, item)
		}

		return c.JSON(response.Batch{
			Success:               true,
			TotalImages:           report.TotalImages,
			Successful:            report.SuccessfulCount,
			Failed:                report.FailedCount,
			TotalProcessingTimeMs: report.TotalProcessingTimeMs,
			Results:               results,
		})
	}
}

// readMultipartFile은 업로드 파일의 전체 바이트를 읽습니다
func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
