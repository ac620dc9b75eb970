package wordofday

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByDateFunc      func(ctx context.Context, day time.Time) (*domain.WordOfTheDay, error)
	CreateFunc         func(ctx context.Context, wordID uuid.UUID, day time.Time) (*domain.WordOfTheDay, error)
	IncrementViewsFunc func(ctx context.Context, id uuid.UUID) (int, error)

	calls struct {
		GetByDate []struct {
			Ctx context.Context
			Day time.Time
		}
		Create []struct {
			Ctx    context.Context
			WordID uuid.UUID
			Day    time.Time
		}
		IncrementViews []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByDate      sync.RWMutex
	lockCreate         sync.RWMutex
	lockIncrementViews sync.RWMutex
}

func (mock *entryRepoMock) GetByDate(ctx context.Context, day time.Time) (*domain.WordOfTheDay, error) {
	if mock.GetByDateFunc == nil {
		panic("entryRepoMock.GetByDateFunc: method is nil but entryRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{
		Ctx: ctx,
		Day: day,
	}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, day)
}

func (mock *entryRepoMock) GetByDateCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, wordID uuid.UUID, day time.Time) (*domain.WordOfTheDay, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
		Day    time.Time
	}{
		Ctx:    ctx,
		WordID: wordID,
		Day:    day,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, wordID, day)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
	Day    time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementViewsFunc == nil {
		panic("entryRepoMock.IncrementViewsFunc: method is nil but entryRepo.IncrementViews was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockIncrementViews.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, callInfo)
	mock.lockIncrementViews.Unlock()
	return mock.IncrementViewsFunc(ctx, id)
}

func (mock *entryRepoMock) IncrementViewsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockIncrementViews.RLock()
	calls := mock.calls.IncrementViews
	mock.lockIncrementViews.RUnlock()
	return calls
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	RandomIDFunc func(ctx context.Context) (uuid.UUID, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		RandomID []struct {
			Ctx context.Context
		}
	}
	lockGetByID  sync.RWMutex
	lockRandomID sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) RandomID(ctx context.Context) (uuid.UUID, error) {
	if mock.RandomIDFunc == nil {
		panic("wordRepoMock.RandomIDFunc: method is nil but wordRepo.RandomID was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRandomID.Lock()
	mock.calls.RandomID = append(mock.calls.RandomID, callInfo)
	mock.lockRandomID.Unlock()
	return mock.RandomIDFunc(ctx)
}

func (mock *wordRepoMock) RandomIDCalls() []struct {
	Ctx context.Context
} {
	mock.lockRandomID.RLock()
	calls := mock.calls.RandomID
	mock.lockRandomID.RUnlock()
	return calls
}
