package service

import (
	"strings"

	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// ValidatorImpl은 업로드 이미지 검증 구현체입니다.
// 비용이 싼 검사를 먼저 수행하여 잘못된 입력에 쓰는 작업량과
// 디코더에 넘어가는 버퍼 크기를 제한합니다.
type ValidatorImpl struct {
	config *configs.EnvConfig
}

// NewImageValidator는 새 이미지 검증기를 생성합니다
func NewImageValidator(config *configs.EnvConfig) _interface.ImageValidator {
	return &ValidatorImpl{config: config}
}

// Validate는 크기 → 확장자 → 매직 바이트 → 디코딩 순서로 검사합니다.
// 첫 번째 실패에서 중단하고 해당 오류를 반환하며, 부수 효과는 없습니다.
func (v *ValidatorImpl) Validate(content []byte, filename string) *structure.AppError {
	// 1. 크기 검사
	fileSize := int64(len(content))
	if fileSize > v.config.MaxFileSizeBytes() {
		utils.Warn("validator", "파일 크기 초과: %d바이트 (최대 %d)", fileSize, v.config.MaxFileSizeBytes())
		return structure.NewFileTooLargeError(
			v.config.Upload.MaxFileSizeMB,
			float64(fileSize)/(1024*1024),
		)
	}

	// 2. 선언된 파일명의 확장자 검사
	extension := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		extension = strings.ToLower(filename[idx+1:])
	}
	if !v.allowedExtension(extension) {
		utils.Warn("validator", "허용되지 않는 확장자: %q", extension)
		return structure.NewUnsupportedFileTypeError(extension, v.config.Upload.AllowedExtensions)
	}

	// 3. 매직 바이트로 실제 타입 판별 (확장자/헤더 위조 방어)
	sniffed := utils.DetectImageType(content)
	if sniffed == "" || !v.allowedExtension(sniffed) {
		utils.Warn("validator", "매직 바이트 타입 불일치: %q", sniffed)
		return structure.NewUnsupportedFileTypeError(sniffed, v.config.Upload.AllowedExtensions)
	}

	// 4. 구조 무결성 검사 (전체 디코딩)
	if _, _, err := utils.DecodeImage(content); err != nil {
		utils.Error("validator", "이미지 디코딩 실패: %v", err)
		return structure.NewInvalidFileError("File appears to be corrupted or not a valid image")
	}

	return nil
}

// allowedExtension은 확장자가 허용 목록에 있는지 확인합니다.
// jpeg는 jpg 허용 목록과 동일하게 취급합니다.
func (v *ValidatorImpl) allowedExtension(ext string) bool {
	for _, allowed := range v.config.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
