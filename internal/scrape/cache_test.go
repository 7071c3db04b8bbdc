package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServesRepeatedResolutions(t *testing.T) {
	strategy := &stubStrategy{id: MethodGuestRender, applies: true, result: success(MethodGuestRender, longText(300))}
	controller := testController(strategy).WithCache(NewDocumentCache(time.Minute))
	target := jobTarget(t)

	first := controller.Resolve(context.Background(), target)
	second := controller.Resolve(context.Background(), target)

	require.True(t, first.Succeeded())
	require.True(t, second.Succeeded())
	assert.Equal(t, 1, strategy.calls, "second resolution must be served from cache")
	assert.Equal(t, first.Success.Normalized.CanonicalText, second.Success.Normalized.CanonicalText)
}

func TestCacheNeverStoresFailures(t *testing.T) {
	strategy := &stubStrategy{id: MethodGuestRender, applies: true, result: failure(MethodGuestRender, ReasonBlocked)}
	controller := testController(strategy).WithCache(NewDocumentCache(time.Minute))
	target := jobTarget(t)

	controller.Resolve(context.Background(), target)
	controller.Resolve(context.Background(), target)

	assert.Equal(t, 2, strategy.calls, "failed resolutions must re-run the pipeline")
}

func TestCacheExpiry(t *testing.T) {
	cache := NewDocumentCache(time.Minute)
	target := jobTarget(t)
	result := PipelineResult{Target: target, Success: &Success{MethodID: MethodGuestRender}}

	cache.Put(target.URL, result)
	cache.entries[target.URL] = cacheEntry{
		result:   result,
		storedAt: time.Now().Add(-2 * time.Minute),
	}

	_, ok := cache.Get(target.URL)
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewDocumentCache(time.Minute)
	target := jobTarget(t)

	cache.Put(target.URL, PipelineResult{Target: target, Success: &Success{MethodID: MethodGuestRender}})
	cache.Invalidate(target.URL)

	_, ok := cache.Get(target.URL)
	assert.False(t, ok)
}
