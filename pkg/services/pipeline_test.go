package service

import (
	"context"
	"image/color"
	"testing"
	"time"

	repository "github.com/flexbone/ocr-go/pkg/repositories"
	constants "github.com/flexbone/ocr-go/pkg/types"
)

func newTestPipeline(fake *fakeOCRService) *PipelineImpl {
	config := testConfig()
	cache := repository.NewOCRCacheRepository(config.Cache.Capacity, config.Cache.TTL)
	return NewPipelineService(NewImageValidator(config), fake, cache).(*PipelineImpl)
}

func TestPipelineSuccess(t *testing.T) {
	fake := &fakeOCRService{text: "hello world", confidence: 0.94}
	pipeline := newTestPipeline(fake)

	outcome := pipeline.Process(context.Background(), "photo.png", makePNG(4, 4, color.White))

	if !outcome.Success {
		t.Fatalf("성공해야 할 처리가 실패했습니다: %s %s", outcome.ErrorCode, outcome.ErrorMessage)
	}
	if outcome.Result.Text != "hello world" {
		t.Errorf("Text = %q, want %q", outcome.Result.Text, "hello world")
	}
	if outcome.Filename != "photo.png" {
		t.Errorf("Filename = %q, want %q", outcome.Filename, "photo.png")
	}
	if outcome.ProcessingTimeMs < 0 {
		t.Errorf("ProcessingTimeMs = %d, 음수일 수 없습니다", outcome.ProcessingTimeMs)
	}
}

func TestPipelineCacheIdempotent(t *testing.T) {
	fake := &fakeOCRService{text: "cached text", confidence: 0.8, delay: 50 * time.Millisecond}
	pipeline := newTestPipeline(fake)

	content := makePNG(6, 6, color.Black)

	first := pipeline.Process(context.Background(), "a.png", content)
	second := pipeline.Process(context.Background(), "b.png", content)

	if !first.Success || !second.Success {
		t.Fatal("두 처리 모두 성공해야 합니다")
	}

	// 동일 바이트 → 동일 결과 (파일명이 달라도 같은 이미지)
	if first.Result.Text != second.Result.Text || first.Result.Confidence != second.Result.Confidence {
		t.Error("동일 바이트에 대한 결과가 다릅니다")
	}

	// 두 번째 호출은 캐시 히트이므로 엔진은 한 번만 호출됨
	if fake.callCount() != 1 {
		t.Errorf("엔진 호출 수 = %d, want 1", fake.callCount())
	}

	// 캐시 히트는 미스보다 측정 가능할 만큼 빨라야 함
	if second.ProcessingTimeMs >= first.ProcessingTimeMs {
		t.Errorf("캐시 히트(%dms)가 미스(%dms)보다 빠르지 않습니다",
			second.ProcessingTimeMs, first.ProcessingTimeMs)
	}
}

func TestPipelineValidationFailure(t *testing.T) {
	fake := &fakeOCRService{text: "unused"}
	pipeline := newTestPipeline(fake)

	outcome := pipeline.Process(context.Background(), "bad.txt", makePNG(4, 4, color.White))

	if outcome.Success {
		t.Fatal("검증 실패가 성공으로 보고되었습니다")
	}
	if outcome.ErrorCode != constants.ERR_UNSUPPORTED_FILE_TYPE {
		t.Errorf("ErrorCode = %s, want %s", outcome.ErrorCode, constants.ERR_UNSUPPORTED_FILE_TYPE)
	}
	if outcome.Result != nil {
		t.Error("실패 결과에 Result가 있습니다")
	}
	// 검증 실패 시 엔진은 호출되지 않음
	if fake.callCount() != 0 {
		t.Errorf("엔진 호출 수 = %d, want 0", fake.callCount())
	}
}

func TestPipelineEngineFailure(t *testing.T) {
	fake := &fakeOCRService{fail: true}
	pipeline := newTestPipeline(fake)

	outcome := pipeline.Process(context.Background(), "photo.png", makePNG(4, 4, color.White))

	if outcome.Success {
		t.Fatal("엔진 실패가 성공으로 보고되었습니다")
	}
	if outcome.ErrorCode != constants.ERR_OCR_PROCESSING {
		t.Errorf("ErrorCode = %s, want %s", outcome.ErrorCode, constants.ERR_OCR_PROCESSING)
	}
}

func TestPipelineEngineFailureNotCached(t *testing.T) {
	fake := &fakeOCRService{fail: true}
	pipeline := newTestPipeline(fake)

	content := makePNG(4, 4, color.White)
	pipeline.Process(context.Background(), "photo.png", content)
	pipeline.Process(context.Background(), "photo.png", content)

	// 실패 결과는 캐시에 저장되지 않으므로 매번 엔진을 호출함
	if fake.callCount() != 2 {
		t.Errorf("엔진 호출 수 = %d, want 2", fake.callCount())
	}
}

func TestPipelineNoTextIsSuccess(t *testing.T) {
	fake := &fakeOCRService{text: "", confidence: 0}
	pipeline := newTestPipeline(fake)

	outcome := pipeline.Process(context.Background(), "blank.png", makePNG(4, 4, color.White))

	if !outcome.Success {
		t.Fatal("텍스트 미검출이 실패로 보고되었습니다")
	}
	if outcome.Result.Text != "" || outcome.Result.Confidence != 0 {
		t.Errorf("빈 결과가 아닙니다: %+v", outcome.Result)
	}
	if outcome.ErrorCode != "" {
		t.Errorf("ErrorCode = %s, want 빈 문자열", outcome.ErrorCode)
	}
}
