package rest

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListGroupsFunc func(ctx context.Context) ([]domain.Group, error)

	calls struct {
		ListGroups []struct {
			Ctx context.Context
		}
	}
	lockListGroups sync.RWMutex
}

func (mock *catalogServiceMock) ListGroups(ctx context.Context) ([]domain.Group, error) {
	if mock.ListGroupsFunc == nil {
		panic("catalogServiceMock.ListGroupsFunc: method is nil but catalogService.ListGroups was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListGroups.Lock()
	mock.calls.ListGroups = append(mock.calls.ListGroups, callInfo)
	mock.lockListGroups.Unlock()
	return mock.ListGroupsFunc(ctx)
}

func (mock *catalogServiceMock) ListGroupsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListGroups.RLock()
	calls := mock.calls.ListGroups
	mock.lockListGroups.RUnlock()
	return calls
}
