package trades_test

import (
	"context"
	"errors"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
)

type fakeCache struct {
	data      map[string]entity.ItemInfo
	insertErr error
	inserts   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]entity.ItemInfo{}}
}

func (f *fakeCache) Get(classID string) (entity.ItemInfo, bool) {
	info, ok := f.data[classID]
	return info, ok
}

func (f *fakeCache) Insert(classID string, info entity.ItemInfo) error {
	f.inserts++
	f.data[classID] = info
	return f.insertErr
}

type lookupCall struct {
	appID uint32
	pairs []entity.ClassInstance
}

type fakeLookup struct {
	results map[uint32]map[string]entity.ItemInfo
	failFor map[uint32]bool
	calls   []lookupCall
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		results: map[uint32]map[string]entity.ItemInfo{},
		failFor: map[uint32]bool{},
	}
}

func (f *fakeLookup) BatchLookup(
	_ context.Context,
	appID uint32,
	pairs []entity.ClassInstance,
) (map[string]entity.ItemInfo, error) {
	f.calls = append(f.calls, lookupCall{appID: appID, pairs: pairs})

	if f.failFor[appID] {
		return nil, errors.New("lookup failed")
	}

	return f.results[appID], nil
}

type fakeHistory struct {
	records   []entity.TradeHistoryRecord
	err       error
	starts    []int64
	maxTrades []int
}

func (f *fakeHistory) ListHistory(
	_ context.Context,
	startTime int64,
	maxTrades int,
) ([]entity.TradeHistoryRecord, error) {
	f.starts = append(f.starts, startTime)
	f.maxTrades = append(f.maxTrades, maxTrades)

	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}
