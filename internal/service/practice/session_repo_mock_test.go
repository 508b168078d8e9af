package practice

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ sessionRepo = &sessionRepoMock{}

var _ sessionStore = &sessionRepoMock{}

type sessionRepoMock struct {
	CompleteSessionFunc func(ctx context.Context, sessionID uuid.UUID, summary domain.Summary) error
	CreateSessionFunc   func(ctx context.Context, in domain.NewSession) (uuid.UUID, error)
	GetByIDFunc         func(ctx context.Context, sessionID uuid.UUID) (*domain.SessionRecord, error)
	ListRecentFunc      func(ctx context.Context, limit int) ([]*domain.SessionRecord, error)
	RecordResponseFunc  func(ctx context.Context, sessionID uuid.UUID, r domain.Response) error

	calls struct {
		CompleteSession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			Summary   domain.Summary
		}
		CreateSession []struct {
			Ctx context.Context
			In  domain.NewSession
		}
		GetByID []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
		RecordResponse []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			R         domain.Response
		}
	}
	lockCompleteSession sync.RWMutex
	lockCreateSession   sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListRecent      sync.RWMutex
	lockRecordResponse  sync.RWMutex
}

func (mock *sessionRepoMock) CompleteSession(ctx context.Context, sessionID uuid.UUID, summary domain.Summary) error {
	if mock.CompleteSessionFunc == nil {
		panic("sessionRepoMock.CompleteSessionFunc: method is nil but sessionRepo.CompleteSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		Summary   domain.Summary
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		Summary:   summary,
	}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, callInfo)
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, sessionID, summary)
}

func (mock *sessionRepoMock) CompleteSessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	Summary   domain.Summary
} {
	mock.lockCompleteSession.RLock()
	calls := mock.calls.CompleteSession
	mock.lockCompleteSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CreateSession(ctx context.Context, in domain.NewSession) (uuid.UUID, error) {
	if mock.CreateSessionFunc == nil {
		panic("sessionRepoMock.CreateSessionFunc: method is nil but sessionRepo.CreateSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.NewSession
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, in)
}

func (mock *sessionRepoMock) CreateSessionCalls() []struct {
	Ctx context.Context
	In  domain.NewSession
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SessionRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListRecent(ctx context.Context, limit int) ([]*domain.SessionRecord, error) {
	if mock.ListRecentFunc == nil {
		panic("sessionRepoMock.ListRecentFunc: method is nil but sessionRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *sessionRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RecordResponse(ctx context.Context, sessionID uuid.UUID, r domain.Response) error {
	if mock.RecordResponseFunc == nil {
		panic("sessionRepoMock.RecordResponseFunc: method is nil but sessionRepo.RecordResponse was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		R         domain.Response
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		R:         r,
	}
	mock.lockRecordResponse.Lock()
	mock.calls.RecordResponse = append(mock.calls.RecordResponse, callInfo)
	mock.lockRecordResponse.Unlock()
	return mock.RecordResponseFunc(ctx, sessionID, r)
}

func (mock *sessionRepoMock) RecordResponseCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	R         domain.Response
} {
	mock.lockRecordResponse.RLock()
	calls := mock.calls.RecordResponse
	mock.lockRecordResponse.RUnlock()
	return calls
}
