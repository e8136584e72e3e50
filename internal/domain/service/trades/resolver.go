package trades

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/pkg/logx"
)

// Resolver maps assets to display names, consulting the item cache first and
// falling back to batched remote lookups grouped by appid.
type Resolver struct {
	cache  ItemCache
	lookup NameLookupSource
}

func NewResolver(cache ItemCache, lookup NameLookupSource) *Resolver {
	return &Resolver{
		cache:  cache,
		lookup: lookup,
	}
}

// Resolve returns one market hash name per input asset, order preserved.
// Assets that cannot be resolved from cache or remote get a placeholder name.
// Every newly-resolved class is written to the cache before Resolve returns.
func (r *Resolver) Resolve(ctx context.Context, assets []entity.Asset) []string {
	resolved := make(map[entity.ClassInstance]string, len(assets))

	for _, asset := range assets {
		key := entity.ClassInstance{ClassID: asset.ClassID, InstanceID: asset.InstanceID}
		if _, ok := resolved[key]; ok {
			continue
		}

		if info, ok := r.cache.Get(asset.ClassID); ok {
			resolved[key] = info.MarketHashName
			cacheHits.Inc()
		} else {
			cacheMisses.Inc()
		}
	}

	// Unique misses, grouped per appid: lookups are appid-scoped and batched
	// to keep the call count down.
	byApp := make(map[uint32][]entity.ClassInstance)
	seen := make(map[entity.ClassInstance]struct{}, len(assets))

	for _, asset := range assets {
		key := entity.ClassInstance{ClassID: asset.ClassID, InstanceID: asset.InstanceID}
		if _, ok := resolved[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		byApp[asset.AppID] = append(byApp[asset.AppID], key)
	}

	for appID, pairs := range byApp {
		lookupBatches.Inc()

		result, err := r.lookup.BatchLookup(ctx, appID, pairs)
		if err != nil {
			// Degrade to placeholders for this appid only.
			lookupFailures.Inc()
			logger(ctx).Error(
				"asset class lookup failed",
				slog.Any(logx.FieldAppID, appID),
				logx.Error(err),
			)
			continue
		}

		for _, pair := range pairs {
			info, ok := result[pair.ClassID]
			if !ok {
				info, ok = result[pair.ClassID+"_"+pair.InstanceID]
			}
			if !ok {
				continue
			}

			if err := r.cache.Insert(pair.ClassID, info); err != nil {
				logger(ctx).Error("item cache insert failed", logx.Error(err))
			}

			resolved[pair] = info.MarketHashName
		}
	}

	return lo.Map(assets, func(asset entity.Asset, _ int) string {
		if name, ok := resolved[entity.ClassInstance{ClassID: asset.ClassID, InstanceID: asset.InstanceID}]; ok {
			return name
		}
		return fmt.Sprintf("Unknown Asset (%s)", asset.AssetID)
	})
}
