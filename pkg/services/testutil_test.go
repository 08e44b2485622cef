package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"sync/atomic"
	"time"

	"github.com/flexbone/ocr-go/pkg/configs"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
)

// testConfig는 테스트용 설정을 생성합니다
func testConfig() *configs.EnvConfig {
	config := &configs.EnvConfig{}
	config.Server.AppName = "test"
	config.Upload.MaxFileSizeMB = 10
	config.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}
	config.Cache.Capacity = 100
	config.Cache.TTL = time.Hour
	config.OCR.Language = "eng"
	config.OCR.Timeout = 5 * time.Second
	config.OCR.MaxBatchImages = 10
	config.Auth.JWTSecret = "test-secret"
	config.Auth.JWTExpirationMinutes = 30
	config.Auth.DemoUsers = "demo:demo123"
	return config
}

// makePNG는 지정된 크기의 올바른 PNG 바이트를 생성합니다
func makePNG(width, height int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// makeJPEG는 올바른 JPEG 바이트를 생성합니다
func makeJPEG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// makeGIF는 올바른 GIF 바이트를 생성합니다
func makeGIF(width, height int) []byte {
	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{color.White, color.Black})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// makeCorruptPNG는 시그니처는 올바르지만 본문이 잘린 PNG 바이트를 생성합니다
func makeCorruptPNG() []byte {
	valid := makePNG(4, 4, color.White)
	return valid[:20]
}

// fakeOCRService는 외부 엔진을 대신하는 테스트 구현체입니다
type fakeOCRService struct {
	text       string
	confidence float64
	delay      time.Duration
	fail       bool
	calls      int64
}

func (f *fakeOCRService) Recognize(ctx context.Context, content []byte) (*structure.RecognitionResult, *structure.AppError) {
	atomic.AddInt64(&f.calls, 1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, structure.NewOCRError("OCR engine did not respond in time")
		}
	}
	if f.fail {
		return nil, structure.NewOCRError("Failed to extract text from image")
	}
	return &structure.RecognitionResult{
		Text:            f.text,
		Confidence:      f.confidence,
		SourceLatencyMs: f.delay.Milliseconds(),
	}, nil
}

func (f *fakeOCRService) callCount() int64 {
	return atomic.LoadInt64(&f.calls)
}
