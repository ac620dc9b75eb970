package regionmap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

var _ regionRepo = &regionRepoMock{}

type regionRepoMock struct {
	ListAllFunc func(ctx context.Context) ([]domain.Region, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
}

func (mock *regionRepoMock) ListAll(ctx context.Context) ([]domain.Region, error) {
	if mock.ListAllFunc == nil {
		panic("regionRepoMock.ListAllFunc: method is nil but regionRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *regionRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	ListByWordIDFunc func(ctx context.Context, wordID uuid.UUID) ([]domain.WordRegion, error)
	ListAllFunc      func(ctx context.Context) ([]domain.WordRegion, error)

	calls struct {
		ListByWordID []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListByWordID sync.RWMutex
	lockListAll      sync.RWMutex
}

func (mock *linkRepoMock) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.WordRegion, error) {
	if mock.ListByWordIDFunc == nil {
		panic("linkRepoMock.ListByWordIDFunc: method is nil but linkRepo.ListByWordID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		WordID: wordID,
	}
	mock.lockListByWordID.Lock()
	mock.calls.ListByWordID = append(mock.calls.ListByWordID, callInfo)
	mock.lockListByWordID.Unlock()
	return mock.ListByWordIDFunc(ctx, wordID)
}

func (mock *linkRepoMock) ListByWordIDCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockListByWordID.RLock()
	calls := mock.calls.ListByWordID
	mock.lockListByWordID.RUnlock()
	return calls
}

func (mock *linkRepoMock) ListAll(ctx context.Context) ([]domain.WordRegion, error) {
	if mock.ListAllFunc == nil {
		panic("linkRepoMock.ListAllFunc: method is nil but linkRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *linkRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ mapCache = &mapCacheMock{}

type mapCacheMock struct {
	GetAllWordsFunc func(ctx context.Context) ([]domain.MapEntry, bool, error)
	GenerationFunc  func(ctx context.Context) (int64, error)
	SetAllWordsFunc func(ctx context.Context, gen int64, entries []domain.MapEntry) (bool, error)
	InvalidateFunc  func(ctx context.Context) error

	calls struct {
		GetAllWords []struct {
			Ctx context.Context
		}
		Generation []struct {
			Ctx context.Context
		}
		SetAllWords []struct {
			Ctx     context.Context
			Gen     int64
			Entries []domain.MapEntry
		}
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockGetAllWords sync.RWMutex
	lockGeneration  sync.RWMutex
	lockSetAllWords sync.RWMutex
	lockInvalidate  sync.RWMutex
}

func (mock *mapCacheMock) GetAllWords(ctx context.Context) ([]domain.MapEntry, bool, error) {
	if mock.GetAllWordsFunc == nil {
		panic("mapCacheMock.GetAllWordsFunc: method is nil but mapCache.GetAllWords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetAllWords.Lock()
	mock.calls.GetAllWords = append(mock.calls.GetAllWords, callInfo)
	mock.lockGetAllWords.Unlock()
	return mock.GetAllWordsFunc(ctx)
}

func (mock *mapCacheMock) GetAllWordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetAllWords.RLock()
	calls := mock.calls.GetAllWords
	mock.lockGetAllWords.RUnlock()
	return calls
}

func (mock *mapCacheMock) Generation(ctx context.Context) (int64, error) {
	if mock.GenerationFunc == nil {
		panic("mapCacheMock.GenerationFunc: method is nil but mapCache.Generation was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGeneration.Lock()
	mock.calls.Generation = append(mock.calls.Generation, callInfo)
	mock.lockGeneration.Unlock()
	return mock.GenerationFunc(ctx)
}

func (mock *mapCacheMock) GenerationCalls() []struct {
	Ctx context.Context
} {
	mock.lockGeneration.RLock()
	calls := mock.calls.Generation
	mock.lockGeneration.RUnlock()
	return calls
}

func (mock *mapCacheMock) SetAllWords(ctx context.Context, gen int64, entries []domain.MapEntry) (bool, error) {
	if mock.SetAllWordsFunc == nil {
		panic("mapCacheMock.SetAllWordsFunc: method is nil but mapCache.SetAllWords was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Gen     int64
		Entries []domain.MapEntry
	}{
		Ctx:     ctx,
		Gen:     gen,
		Entries: entries,
	}
	mock.lockSetAllWords.Lock()
	mock.calls.SetAllWords = append(mock.calls.SetAllWords, callInfo)
	mock.lockSetAllWords.Unlock()
	return mock.SetAllWordsFunc(ctx, gen, entries)
}

func (mock *mapCacheMock) SetAllWordsCalls() []struct {
	Ctx     context.Context
	Gen     int64
	Entries []domain.MapEntry
} {
	mock.lockSetAllWords.RLock()
	calls := mock.calls.SetAllWords
	mock.lockSetAllWords.RUnlock()
	return calls
}

func (mock *mapCacheMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("mapCacheMock.InvalidateFunc: method is nil but mapCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx)
}

func (mock *mapCacheMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
