package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF 포맷 지원
	_ "image/jpeg" // JPEG 포맷 지원
	_ "image/png"  // PNG 포맷 지원

	"github.com/disintegration/imaging"
	constants "github.com/flexbone/ocr-go/pkg/types"
)

// ImageDimensions는 이미지의 가로/세로 크기 정보를 담고 있습니다
type ImageDimensions struct {
	Width  int
	Height int
}

// DetectImageType은 페이로드의 매직 바이트로 실제 이미지 타입을 판별합니다.
// 선언된 확장자나 Content-Type 헤더는 신뢰하지 않습니다.
func DetectImageType(content []byte) string {
	if len(content) >= 3 && content[0] == 0xFF && content[1] == 0xD8 && content[2] == 0xFF {
		return constants.IMAGE_TYPE_JPEG
	}
	if len(content) >= 8 && bytes.Equal(content[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}) {
		return constants.IMAGE_TYPE_PNG
	}
	// GIF 파일 시그니처 확인 (GIF87a 또는 GIF89a)
	if len(content) >= 6 {
		header := string(content[:6])
		if header == "GIF87a" || header == "GIF89a" {
			return constants.IMAGE_TYPE_GIF
		}
	}
	return constants.IMAGE_TYPE_UNKNOWN
}

// DecodeImage는 페이로드 전체를 디코딩하여 이미지 구조 손상 여부를 확인합니다.
// 잘린 파일이나 손상된 헤더는 여기서 걸러집니다.
func DecodeImage(content []byte) (image.Image, *ImageDimensions, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("이미지 디코딩 실패: %v", err)
	}

	bounds := img.Bounds()
	return img, &ImageDimensions{
		Width:  bounds.Max.X - bounds.Min.X,
		Height: bounds.Max.Y - bounds.Min.Y,
	}, nil
}

// NormalizeForOCR은 OCR 엔진에 넘기기 전에 과도하게 큰 이미지를 축소하고
// 그레이스케일로 변환합니다. 기준 이하의 이미지는 원본 바이트를 그대로 반환합니다.
func NormalizeForOCR(content []byte) []byte {
	img, dims, err := DecodeImage(content)
	if err != nil {
		// 검증을 통과한 바이트이므로 실제로는 도달하지 않음
		return content
	}

	if dims.Width <= constants.MAX_OCR_DIMENSION && dims.Height <= constants.MAX_OCR_DIMENSION {
		return content
	}

	resized := imaging.Fit(img, constants.MAX_OCR_DIMENSION, constants.MAX_OCR_DIMENSION, imaging.Lanczos)
	gray := imaging.Grayscale(resized)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, gray, imaging.PNG); err != nil {
		Warn("image", "전처리 이미지 인코딩 실패, 원본 사용: %v", err)
		return content
	}

	return buf.Bytes()
}
