package repository

import (
	"container/list"
	"sync"
	"time"

	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// OCRCacheImpl은 지문 → 인식 결과의 인메모리 LRU 캐시 구현체입니다.
// 용량 초과 시 가장 오래 사용되지 않은 항목을 제거하고,
// TTL이 지난 항목은 다음 접근 시 미스로 처리하며 제거합니다.
// 모든 동기화는 내부에서 처리하므로 호출자는 잠금이 필요 없습니다.
type OCRCacheImpl struct {
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // 최근 사용 순서 (front = 최신)

	// 테스트에서 시간을 주입하기 위한 훅
	now func() time.Time
}

// lruItem은 order 리스트에 보관되는 항목입니다
type lruItem struct {
	entry *structure.CacheEntry
}

// NewOCRCacheRepository는 지정된 용량과 TTL로 새 캐시를 생성합니다.
// 전역 싱글톤이 아니며 컨테이너에서 생성되어 파이프라인에 주입됩니다.
func NewOCRCacheRepository(capacity int, ttl time.Duration) *OCRCacheImpl {
	return &OCRCacheImpl{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// 인터페이스 구현 확인
var _ _interface.OCRCacheRepository = (*OCRCacheImpl)(nil)

// Get은 지문에 대한 캐시 결과를 반환합니다.
// 히트 시 최근 사용 순서를 갱신하고, 만료된 항목은 제거 후 미스로 처리합니다.
func (c *OCRCacheImpl) Get(fingerprint string) (*structure.RecognitionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[fingerprint]
	if !exists {
		utils.RecordCacheMiss()
		return nil, false
	}

	item := elem.Value.(*lruItem)
	if c.expired(item.entry) {
		c.removeElement(elem)
		utils.RecordCacheMiss()
		return nil, false
	}

	c.order.MoveToFront(elem)
	utils.RecordCacheHit()
	return item.entry.Result, true
}

// Put은 지문에 대한 결과를 저장하거나 갱신합니다.
// 동일 지문에 대한 동시 쓰기는 마지막 Put이 저장 항목을 결정합니다.
func (c *OCRCacheImpl) Put(fingerprint string, result *structure.RecognitionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[fingerprint]; exists {
		// 기존 항목 갱신 (CreatedAt도 새로 기록)
		elem.Value.(*lruItem).entry = &structure.CacheEntry{
			Fingerprint: fingerprint,
			Result:      result,
			CreatedAt:   c.now(),
		}
		c.order.MoveToFront(elem)
		return
	}

	// 만료된 항목을 먼저 정리한 뒤 용량을 확인
	c.sweepExpired()

	for c.capacity > 0 && c.order.Len() >= c.capacity {
		// 가장 오래 사용되지 않은 항목 제거
		c.removeElement(c.order.Back())
	}

	entry := &structure.CacheEntry{
		Fingerprint: fingerprint,
		Result:      result,
		CreatedAt:   c.now(),
	}
	c.entries[fingerprint] = c.order.PushFront(&lruItem{entry: entry})
}

// Stats는 캐시의 현재 상태 요약을 반환합니다.
func (c *OCRCacheImpl) Stats() structure.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return structure.CacheStats{
		Size:     c.order.Len(),
		Capacity: c.capacity,
		TTL:      c.ttl,
	}
}

// expired는 항목의 TTL 만료 여부를 확인합니다
func (c *OCRCacheImpl) expired(entry *structure.CacheEntry) bool {
	return c.now().Sub(entry.CreatedAt) >= c.ttl
}

// sweepExpired는 리스트 뒤쪽부터 만료된 항목을 제거합니다
func (c *OCRCacheImpl) sweepExpired() {
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if c.expired(elem.Value.(*lruItem).entry) {
			c.removeElement(elem)
		}
		elem = prev
	}
}

// removeElement는 리스트와 맵에서 항목을 제거합니다
func (c *OCRCacheImpl) removeElement(elem *list.Element) {
	item := elem.Value.(*lruItem)
	delete(c.entries, item.entry.Fingerprint)
	c.order.Remove(elem)
}
