package service

import (
	"context"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// OCRImpl은 Tesseract 기반 OCR 서비스 구현체입니다.
// 엔진 호출 시간을 측정하고 엔진 고유 응답을 RecognitionResult로 정규화합니다.
type OCRImpl struct {
	_interface.Service
}

// NewOCRService는 새 OCR 서비스를 생성합니다
func NewOCRService(config *configs.EnvConfig) _interface.OCRService {
	return &OCRImpl{
		Service: _interface.Service{Config: config},
	}
}

// recognizeOutput은 엔진 호출 고루틴의 결과입니다
type recognizeOutput struct {
	text       string
	confidence float64
	err        error
}

// Recognize는 이미지 바이트에서 텍스트를 추출합니다.
// 텍스트가 검출되지 않은 경우는 오류가 아니라 빈 결과로 반환됩니다.
// 전송/엔진 오류와 타임아웃은 OCR_PROCESSING_ERROR로 반환됩니다.
func (o *OCRImpl) Recognize(ctx context.Context, content []byte) (*structure.RecognitionResult, *structure.AppError) {
	ctx, cancel := context.WithTimeout(ctx, o.Config.OCR.Timeout)
	defer cancel()

	start := time.Now()

	// 과도하게 큰 이미지는 엔진 부하를 제한하기 위해 먼저 축소
	normalized := utils.NormalizeForOCR(content)

	resultCh := make(chan recognizeOutput, 1)
	go func() {
		resultCh <- o.runEngine(normalized)
	}()

	select {
	case <-ctx.Done():
		utils.Error("ocr", "OCR 엔진 타임아웃: %v", ctx.Err())
		return nil, structure.NewOCRError("OCR engine did not respond in time")
	case out := <-resultCh:
		latency := time.Since(start)
		utils.RecordOcrProcessingTime(latency.Seconds())

		if out.err != nil {
			utils.Error("ocr", "OCR 엔진 호출 실패: %v", out.err)
			return nil, structure.NewOCRError("Failed to extract text from image")
		}

		text := strings.TrimSpace(out.text)
		result := &structure.RecognitionResult{
			Text:            text,
			Confidence:      out.confidence,
			SourceLatencyMs: latency.Milliseconds(),
		}
		if text != "" {
			result.DetectedLanguage = o.Config.OCR.Language
		} else {
			// 텍스트 미검출: 성공이지만 신뢰도는 0
			result.Confidence = 0
		}

		return result, nil
	}
}

// runEngine은 gosseract 클라이언트로 실제 인식을 수행합니다.
// 단어 단위 신뢰도의 평균을 0~1 범위로 계산합니다.
func (o *OCRImpl) runEngine(content []byte) recognizeOutput {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.Config.OCR.Language); err != nil {
		return recognizeOutput{err: err}
	}

	if err := client.SetImageFromBytes(content); err != nil {
		return recognizeOutput{err: err}
	}

	text, err := client.Text()
	if err != nil {
		return recognizeOutput{err: err}
	}

	confidence := 0.0
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		sum := 0.0
		for _, box := range boxes {
			sum += box.Confidence
		}
		confidence = sum / float64(len(boxes)) / 100.0
	}
	if confidence > 1 {
		confidence = 1
	}

	return recognizeOutput{text: text, confidence: confidence}
}
