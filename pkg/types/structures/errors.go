package structures

import (
	"fmt"

	constants "github.com/flexbone/ocr-go/pkg/types"
)

// AppError는 컴포넌트 경계를 넘는 오류를 나타내는 명시적 오류 값입니다.
// 오류 코드, 사용자에게 보여줄 메시지, HTTP 상태 코드, 상세 정보를 담습니다.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

// Error는 error 인터페이스를 구현합니다.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewFileTooLargeError는 파일 크기 초과 오류를 생성합니다.
func NewFileTooLargeError(maxSizeMB int, actualSizeMB float64) *AppError {
	return &AppError{
		Code:       constants.ERR_FILE_TOO_LARGE,
		Message:    fmt.Sprintf("File size exceeds maximum allowed size of %dMB", maxSizeMB),
		StatusCode: 413,
		Details: map[string]interface{}{
			"max_size_mb":    maxSizeMB,
			"actual_size_mb": roundTo(actualSizeMB, 2),
		},
	}
}

// NewUnsupportedFileTypeError는 허용되지 않는 파일 타입 오류를 생성합니다.
func NewUnsupportedFileTypeError(receivedType string, allowedTypes []string) *AppError {
	return &AppError{
		Code:       constants.ERR_UNSUPPORTED_FILE_TYPE,
		Message:    fmt.Sprintf("File type '%s' is not supported", receivedType),
		StatusCode: 415,
		Details: map[string]interface{}{
			"received_type": receivedType,
			"allowed_types": allowedTypes,
		},
	}
}

// NewInvalidFileError는 손상되었거나 디코딩할 수 없는 파일 오류를 생성합니다.
func NewInvalidFileError(reason string) *AppError {
	return &AppError{
		Code:       constants.ERR_INVALID_FILE,
		Message:    fmt.Sprintf("Invalid file: %s", reason),
		StatusCode: 400,
		Details: map[string]interface{}{
			"reason": reason,
		},
	}
}

// NewOCRError는 OCR 엔진 처리 실패 오류를 생성합니다.
// 업스트림 내부 정보는 노출하지 않습니다.
func NewOCRError(message string) *AppError {
	return &AppError{
		Code:       constants.ERR_OCR_PROCESSING,
		Message:    message,
		StatusCode: 500,
		Details:    map[string]interface{}{},
	}
}

// NewAuthenticationError는 인증 실패 오류를 생성합니다.
func NewAuthenticationError(message string) *AppError {
	return &AppError{
		Code:       constants.ERR_AUTHENTICATION,
		Message:    message,
		StatusCode: 401,
		Details:    map[string]interface{}{},
	}
}

// NewValidationError는 요청 경계에서의 일반 검증 오류를 생성합니다 (400).
func NewValidationError(code string, message string, details map[string]interface{}) *AppError {
	if details == nil {
		details = map[string]interface{}{}
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: 400,
		Details:    details,
	}
}

// NewInternalError는 예기치 못한 서버 오류를 생성합니다.
func NewInternalError() *AppError {
	return &AppError{
		Code:       constants.ERR_INTERNAL,
		Message:    "An unexpected error occurred",
		StatusCode: 500,
		Details:    map[string]interface{}{},
	}
}

// roundTo는 소수점 places 자리로 반올림합니다.
func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	if v >= 0 {
		return float64(int64(v*scale+0.5)) / scale
	}
	return float64(int64(v*scale-0.5)) / scale
}
