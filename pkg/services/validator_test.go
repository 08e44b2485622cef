package service

import (
	"bytes"
	"image/color"
	"testing"

	constants "github.com/flexbone/ocr-go/pkg/types"
)

func TestValidateAcceptsSupportedFormats(t *testing.T) {
	validator := NewImageValidator(testConfig())

	cases := []struct {
		filename string
		content  []byte
	}{
		{"photo.png", makePNG(4, 4, color.White)},
		{"photo.jpg", makeJPEG(4, 4)},
		{"photo.jpeg", makeJPEG(4, 4)},
		{"anim.gif", makeGIF(4, 4)},
	}

	for _, tc := range cases {
		if appErr := validator.Validate(tc.content, tc.filename); appErr != nil {
			t.Errorf("%s: 유효한 이미지가 거부되었습니다: %v", tc.filename, appErr)
		}
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	validator := NewImageValidator(testConfig())

	oversized := bytes.Repeat([]byte{0xAB}, 11*1024*1024)

	appErr := validator.Validate(oversized, "big.png")
	if appErr == nil {
		t.Fatal("크기 초과 파일이 통과했습니다")
	}
	if appErr.Code != constants.ERR_FILE_TOO_LARGE {
		t.Errorf("Code = %s, want %s", appErr.Code, constants.ERR_FILE_TOO_LARGE)
	}
	if appErr.Details["max_size_mb"] != 10 {
		t.Errorf("max_size_mb 상세 정보가 없습니다: %v", appErr.Details)
	}
}

func TestValidateSizeCheckedBeforeExtension(t *testing.T) {
	validator := NewImageValidator(testConfig())

	// 11MB + 허용되지 않는 확장자 → 크기 검사가 먼저이므로 FILE_TOO_LARGE
	oversized := bytes.Repeat([]byte{0xAB}, 11*1024*1024)

	appErr := validator.Validate(oversized, "big.txt")
	if appErr == nil {
		t.Fatal("검증이 실패해야 합니다")
	}
	if appErr.Code != constants.ERR_FILE_TOO_LARGE {
		t.Errorf("Code = %s, want %s (크기 검사가 확장자보다 먼저)", appErr.Code, constants.ERR_FILE_TOO_LARGE)
	}
}

func TestValidateUnsupportedExtension(t *testing.T) {
	validator := NewImageValidator(testConfig())

	appErr := validator.Validate(makePNG(4, 4, color.White), "document.txt")
	if appErr == nil {
		t.Fatal("허용되지 않는 확장자가 통과했습니다")
	}
	if appErr.Code != constants.ERR_UNSUPPORTED_FILE_TYPE {
		t.Errorf("Code = %s, want %s", appErr.Code, constants.ERR_UNSUPPORTED_FILE_TYPE)
	}
}

func TestValidateMissingExtension(t *testing.T) {
	validator := NewImageValidator(testConfig())

	appErr := validator.Validate(makePNG(4, 4, color.White), "noextension")
	if appErr == nil || appErr.Code != constants.ERR_UNSUPPORTED_FILE_TYPE {
		t.Errorf("확장자 없는 파일명이 거부되지 않았습니다: %v", appErr)
	}
}

func TestValidateSpoofedExtension(t *testing.T) {
	validator := NewImageValidator(testConfig())

	// 확장자는 .png지만 실제 내용은 이미지가 아님 → 매직 바이트 검사에서 거부
	appErr := validator.Validate([]byte("this is not an image at all"), "fake.png")
	if appErr == nil {
		t.Fatal("위조된 확장자가 통과했습니다")
	}
	if appErr.Code != constants.ERR_UNSUPPORTED_FILE_TYPE {
		t.Errorf("Code = %s, want %s", appErr.Code, constants.ERR_UNSUPPORTED_FILE_TYPE)
	}
}

func TestValidateCorruptImage(t *testing.T) {
	validator := NewImageValidator(testConfig())

	// 시그니처는 PNG지만 본문이 잘린 파일 → 디코딩 검사에서 거부
	appErr := validator.Validate(makeCorruptPNG(), "truncated.png")
	if appErr == nil {
		t.Fatal("손상된 파일이 통과했습니다")
	}
	if appErr.Code != constants.ERR_INVALID_FILE {
		t.Errorf("Code = %s, want %s", appErr.Code, constants.ERR_INVALID_FILE)
	}
}

func TestValidateNoSideEffects(t *testing.T) {
	validator := NewImageValidator(testConfig())

	content := makePNG(4, 4, color.White)
	original := make([]byte, len(content))
	copy(original, content)

	validator.Validate(content, "photo.png")

	if !bytes.Equal(content, original) {
		t.Error("검증이 입력 바이트를 변경했습니다")
	}
}
