package trades_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/internal/domain/service/trades"
)

func testAsset(appID uint32, assetID, classID, instanceID string) entity.Asset {
	return entity.Asset{
		AppID:      appID,
		ContextID:  "2",
		AssetID:    assetID,
		ClassID:    classID,
		InstanceID: instanceID,
		Amount:     "1",
	}
}

func TestResolverCacheHit(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	cache.data["100"] = entity.ItemInfo{MarketHashName: "Cached Item"}

	lookup := newFakeLookup()

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{testAsset(440, "1", "100", "0")})

	rq.Equal([]string{"Cached Item"}, names)
	rq.Empty(lookup.calls, "cache hits must not trigger remote lookups")
}

func TestResolverDeduplicatesLookups(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{
		"100": {MarketHashName: "Test Item"},
	}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{
		testAsset(440, "1", "100", "0"),
		testAsset(440, "2", "100", "0"),
	})

	rq.Equal([]string{"Test Item", "Test Item"}, names)
	rq.Len(lookup.calls, 1)
	rq.Equal([]entity.ClassInstance{{ClassID: "100", InstanceID: "0"}}, lookup.calls[0].pairs)
}

func TestResolverCompositeKeyFallback(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{
		"100_1": {MarketHashName: "Variant Item"},
	}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{testAsset(440, "1", "100", "1")})

	rq.Equal([]string{"Variant Item"}, names)
}

func TestResolverUnknownAssetPlaceholder(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{testAsset(440, "5000", "999", "0")})

	rq.Equal([]string{"Unknown Asset (5000)"}, names)
}

func TestResolverPopulatesCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{
		"100": {MarketHashName: "Test Item"},
	}

	resolver := trades.NewResolver(cache, lookup)

	resolver.Resolve(ctx, []entity.Asset{testAsset(440, "1", "100", "0")})

	info, ok := cache.Get("100")
	rq.True(ok, "resolved info must be in the cache before Resolve returns")
	rq.Equal("Test Item", info.MarketHashName)

	// Second resolution is served from the cache.
	names := resolver.Resolve(ctx, []entity.Asset{testAsset(440, "2", "100", "0")})
	rq.Equal([]string{"Test Item"}, names)
	rq.Len(lookup.calls, 1)
}

func TestResolverPartialBatchFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	lookup := newFakeLookup()
	lookup.failFor[440] = true
	lookup.results[730] = map[string]entity.ItemInfo{
		"200": {MarketHashName: "Other App Item"},
	}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{
		testAsset(440, "1", "100", "0"),
		testAsset(730, "2", "200", "0"),
	})

	rq.Equal([]string{"Unknown Asset (1)", "Other App Item"}, names)
	rq.Len(lookup.calls, 2)
}

func TestResolverOrderPreserved(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	cache.data["300"] = entity.ItemInfo{MarketHashName: "Third"}

	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{
		"100": {MarketHashName: "First"},
		"200": {MarketHashName: "Second"},
	}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{
		testAsset(440, "1", "100", "0"),
		testAsset(440, "2", "200", "0"),
		testAsset(440, "3", "300", "0"),
	})

	rq.Equal([]string{"First", "Second", "Third"}, names)
}

func TestResolverCacheInsertFailureStillResolves(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cache := newFakeCache()
	cache.insertErr = context.DeadlineExceeded

	lookup := newFakeLookup()
	lookup.results[440] = map[string]entity.ItemInfo{
		"100": {MarketHashName: "Test Item"},
	}

	resolver := trades.NewResolver(cache, lookup)

	names := resolver.Resolve(ctx, []entity.Asset{testAsset(440, "1", "100", "0")})

	rq.Equal([]string{"Test Item"}, names)
	rq.Equal(1, cache.inserts)
}
