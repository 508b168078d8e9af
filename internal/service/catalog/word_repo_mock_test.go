package catalog

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListGroupsFunc func(ctx context.Context) ([]domain.Group, error)
	ListWordsFunc  func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)

	calls struct {
		ListGroups []struct {
			Ctx context.Context
		}
		ListWords []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
	}
	lockListGroups sync.RWMutex
	lockListWords  sync.RWMutex
}

func (mock *wordRepoMock) ListGroups(ctx context.Context) ([]domain.Group, error) {
	if mock.ListGroupsFunc == nil {
		panic("wordRepoMock.ListGroupsFunc: method is nil but wordRepo.ListGroups was just called")
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

func (mock *wordRepoMock) ListGroupsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListGroups.RLock()
	calls := mock.calls.ListGroups
	mock.lockListGroups.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("wordRepoMock.ListWordsFunc: method is nil but wordRepo.ListWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, filter)
}

func (mock *wordRepoMock) ListWordsCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
