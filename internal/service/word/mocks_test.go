package word

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	SearchFunc       func(ctx context.Context, q string, limit int) ([]domain.Word, error)
	ListFunc         func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	CountFunc        func(ctx context.Context, filter domain.WordFilter) (int, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByContentFunc func(ctx context.Context, content string) (*domain.Word, error)
	CreateFunc       func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, p domain.WordUpdateParams) (*domain.Word, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Search []struct {
			Ctx   context.Context
			Q     string
			Limit int
		}
		List []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByContent []struct {
			Ctx     context.Context
			Content string
		}
		Create []struct {
			Ctx context.Context
			W   *domain.Word
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.WordUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockSearch       sync.RWMutex
	lockList         sync.RWMutex
	lockCount        sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetByContent sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *wordRepoMock) Search(ctx context.Context, q string, limit int) ([]domain.Word, error) {
	if mock.SearchFunc == nil {
		panic("wordRepoMock.SearchFunc: method is nil but wordRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Q     string
		Limit int
	}{
		Ctx:   ctx,
		Q:     q,
		Limit: limit,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q, limit)
}

func (mock *wordRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Q     string
	Limit int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *wordRepoMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) Count(ctx context.Context, filter domain.WordFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("wordRepoMock.CountFunc: method is nil but wordRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *wordRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
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

func (mock *wordRepoMock) GetByContent(ctx context.Context, content string) (*domain.Word, error) {
	if mock.GetByContentFunc == nil {
		panic("wordRepoMock.GetByContentFunc: method is nil but wordRepo.GetByContent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Content string
	}{
		Ctx:     ctx,
		Content: content,
	}
	mock.lockGetByContent.Lock()
	mock.calls.GetByContent = append(mock.calls.GetByContent, callInfo)
	mock.lockGetByContent.Unlock()
	return mock.GetByContentFunc(ctx, content)
}

func (mock *wordRepoMock) GetByContentCalls() []struct {
	Ctx     context.Context
	Content string
} {
	mock.lockGetByContent.RLock()
	calls := mock.calls.GetByContent
	mock.lockGetByContent.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.WordUpdateParams) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.WordUpdateParams
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *wordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.WordUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	UpsertFunc              func(ctx context.Context, wordID uuid.UUID, regionID uuid.UUID, strength int) (*domain.WordRegion, error)
	UpsertBatchFunc         func(ctx context.Context, links []domain.WordRegion) error
	DeleteFunc              func(ctx context.Context, wordID uuid.UUID, regionID uuid.UUID) error
	ListRegionsByWordIDFunc func(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error)

	calls struct {
		Upsert []struct {
			Ctx      context.Context
			WordID   uuid.UUID
			RegionID uuid.UUID
			Strength int
		}
		UpsertBatch []struct {
			Ctx   context.Context
			Links []domain.WordRegion
		}
		Delete []struct {
			Ctx      context.Context
			WordID   uuid.UUID
			RegionID uuid.UUID
		}
		ListRegionsByWordID []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
	}
	lockUpsert              sync.RWMutex
	lockUpsertBatch         sync.RWMutex
	lockDelete              sync.RWMutex
	lockListRegionsByWordID sync.RWMutex
}

func (mock *linkRepoMock) Upsert(ctx context.Context, wordID uuid.UUID, regionID uuid.UUID, strength int) (*domain.WordRegion, error) {
	if mock.UpsertFunc == nil {
		panic("linkRepoMock.UpsertFunc: method is nil but linkRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WordID   uuid.UUID
		RegionID uuid.UUID
		Strength int
	}{
		Ctx:      ctx,
		WordID:   wordID,
		RegionID: regionID,
		Strength: strength,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, wordID, regionID, strength)
}

func (mock *linkRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	WordID   uuid.UUID
	RegionID uuid.UUID
	Strength int
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *linkRepoMock) UpsertBatch(ctx context.Context, links []domain.WordRegion) error {
	if mock.UpsertBatchFunc == nil {
		panic("linkRepoMock.UpsertBatchFunc: method is nil but linkRepo.UpsertBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Links []domain.WordRegion
	}{
		Ctx:   ctx,
		Links: links,
	}
	mock.lockUpsertBatch.Lock()
	mock.calls.UpsertBatch = append(mock.calls.UpsertBatch, callInfo)
	mock.lockUpsertBatch.Unlock()
	return mock.UpsertBatchFunc(ctx, links)
}

func (mock *linkRepoMock) UpsertBatchCalls() []struct {
	Ctx   context.Context
	Links []domain.WordRegion
} {
	mock.lockUpsertBatch.RLock()
	calls := mock.calls.UpsertBatch
	mock.lockUpsertBatch.RUnlock()
	return calls
}

func (mock *linkRepoMock) Delete(ctx context.Context, wordID uuid.UUID, regionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("linkRepoMock.DeleteFunc: method is nil but linkRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WordID   uuid.UUID
		RegionID uuid.UUID
	}{
		Ctx:      ctx,
		WordID:   wordID,
		RegionID: regionID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, wordID, regionID)
}

func (mock *linkRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	WordID   uuid.UUID
	RegionID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *linkRepoMock) ListRegionsByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error) {
	if mock.ListRegionsByWordIDFunc == nil {
		panic("linkRepoMock.ListRegionsByWordIDFunc: method is nil but linkRepo.ListRegionsByWordID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		WordID: wordID,
	}
	mock.lockListRegionsByWordID.Lock()
	mock.calls.ListRegionsByWordID = append(mock.calls.ListRegionsByWordID, callInfo)
	mock.lockListRegionsByWordID.Unlock()
	return mock.ListRegionsByWordIDFunc(ctx, wordID)
}

func (mock *linkRepoMock) ListRegionsByWordIDCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockListRegionsByWordID.RLock()
	calls := mock.calls.ListRegionsByWordID
	mock.lockListRegionsByWordID.RUnlock()
	return calls
}

var _ regionMap = &regionMapMock{}

type regionMapMock struct {
	WordRegionMapDataFunc     func(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error)
	AllWordsRegionMapDataFunc func(ctx context.Context) ([]domain.MapEntry, error)
	InvalidateFunc            func(ctx context.Context)

	calls struct {
		WordRegionMapData []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		AllWordsRegionMapData []struct {
			Ctx context.Context
		}
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockWordRegionMapData     sync.RWMutex
	lockAllWordsRegionMapData sync.RWMutex
	lockInvalidate            sync.RWMutex
}

func (mock *regionMapMock) WordRegionMapData(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error) {
	if mock.WordRegionMapDataFunc == nil {
		panic("regionMapMock.WordRegionMapDataFunc: method is nil but regionMap.WordRegionMapData was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		WordID: wordID,
	}
	mock.lockWordRegionMapData.Lock()
	mock.calls.WordRegionMapData = append(mock.calls.WordRegionMapData, callInfo)
	mock.lockWordRegionMapData.Unlock()
	return mock.WordRegionMapDataFunc(ctx, wordID)
}

func (mock *regionMapMock) WordRegionMapDataCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockWordRegionMapData.RLock()
	calls := mock.calls.WordRegionMapData
	mock.lockWordRegionMapData.RUnlock()
	return calls
}

func (mock *regionMapMock) AllWordsRegionMapData(ctx context.Context) ([]domain.MapEntry, error) {
	if mock.AllWordsRegionMapDataFunc == nil {
		panic("regionMapMock.AllWordsRegionMapDataFunc: method is nil but regionMap.AllWordsRegionMapData was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAllWordsRegionMapData.Lock()
	mock.calls.AllWordsRegionMapData = append(mock.calls.AllWordsRegionMapData, callInfo)
	mock.lockAllWordsRegionMapData.Unlock()
	return mock.AllWordsRegionMapDataFunc(ctx)
}

func (mock *regionMapMock) AllWordsRegionMapDataCalls() []struct {
	Ctx context.Context
} {
	mock.lockAllWordsRegionMapData.RLock()
	calls := mock.calls.AllWordsRegionMapData
	mock.lockAllWordsRegionMapData.RUnlock()
	return calls
}

func (mock *regionMapMock) Invalidate(ctx context.Context) {
	if mock.InvalidateFunc == nil {
		panic("regionMapMock.InvalidateFunc: method is nil but regionMap.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc(ctx)
}

func (mock *regionMapMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	LogFunc            func(ctx context.Context, rec domain.AuditRecord) error
	ListByEntityIDFunc func(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx context.Context
			Rec domain.AuditRecord
		}
		ListByEntityID []struct {
			Ctx      context.Context
			EntityID uuid.UUID
			Limit    int
		}
	}
	lockLog            sync.RWMutex
	lockListByEntityID sync.RWMutex
}

func (mock *auditRepoMock) Log(ctx context.Context, rec domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, rec)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx context.Context
	Rec domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByEntityID(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityIDFunc == nil {
		panic("auditRepoMock.ListByEntityIDFunc: method is nil but auditRepo.ListByEntityID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntityID uuid.UUID
		Limit    int
	}{
		Ctx:      ctx,
		EntityID: entityID,
		Limit:    limit,
	}
	mock.lockListByEntityID.Lock()
	mock.calls.ListByEntityID = append(mock.calls.ListByEntityID, callInfo)
	mock.lockListByEntityID.Unlock()
	return mock.ListByEntityIDFunc(ctx, entityID, limit)
}

func (mock *auditRepoMock) ListByEntityIDCalls() []struct {
	Ctx      context.Context
	EntityID uuid.UUID
	Limit    int
} {
	mock.lockListByEntityID.RLock()
	calls := mock.calls.ListByEntityID
	mock.lockListByEntityID.RUnlock()
	return calls
}
