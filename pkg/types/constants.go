package constants

import "time"

// 업로드 허용 확장자 (소문자 기준)
var ALLOWED_EXTENSIONS = []string{"jpg", "jpeg", "png", "gif"}

// 매직 바이트로 판별한 이미지 타입
const (
	IMAGE_TYPE_JPEG    = "jpeg"
	IMAGE_TYPE_PNG     = "png"
	IMAGE_TYPE_GIF     = "gif"
	IMAGE_TYPE_UNKNOWN = ""
)

// 오류 코드
const (
	ERR_FILE_TOO_LARGE        = "FILE_TOO_LARGE"
	ERR_UNSUPPORTED_FILE_TYPE = "UNSUPPORTED_FILE_TYPE"
	ERR_INVALID_FILE          = "INVALID_FILE"
	ERR_OCR_PROCESSING        = "OCR_PROCESSING_ERROR"
	ERR_AUTHENTICATION        = "AUTHENTICATION_FAILED"
	ERR_RATE_LIMIT            = "RATE_LIMIT_EXCEEDED"
	ERR_INTERNAL              = "INTERNAL_SERVER_ERROR"
)

// 파일 업로드 제한
const (
	DEFAULT_MAX_FILE_SIZE_MB = 10
	DEFAULT_MAX_BATCH_IMAGES = 10
)

// 캐시 설정 기본값
const (
	DEFAULT_CACHE_CAPACITY = 100
	DEFAULT_CACHE_TTL      = time.Hour
)

// OCR 엔진 설정
const (
	DEFAULT_OCR_TIMEOUT  = 60 * time.Second
	DEFAULT_OCR_LANGUAGE = "eng"

	// OCR에 전달하기 전 축소 기준 (긴 변 픽셀)
	MAX_OCR_DIMENSION = 2500
)

// 텍스트 미검출 시 응답 메시지
const NO_TEXT_FOUND_MESSAGE = "No text could be detected in the uploaded image"
