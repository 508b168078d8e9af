package practice

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ promptCatalog = &promptCatalogMock{}

type promptCatalogMock struct {
	ListWritingPromptsFunc func(ctx context.Context, count int, level domain.WritingLevel) ([]string, error)

	calls struct {
		ListWritingPrompts []struct {
			Ctx   context.Context
			Count int
			Level domain.WritingLevel
		}
	}
	lockListWritingPrompts sync.RWMutex
}

func (mock *promptCatalogMock) ListWritingPrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error) {
	if mock.ListWritingPromptsFunc == nil {
		panic("promptCatalogMock.ListWritingPromptsFunc: method is nil but promptCatalog.ListWritingPrompts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
		Level domain.WritingLevel
	}{
		Ctx:   ctx,
		Count: count,
		Level: level,
	}
	mock.lockListWritingPrompts.Lock()
	mock.calls.ListWritingPrompts = append(mock.calls.ListWritingPrompts, callInfo)
	mock.lockListWritingPrompts.Unlock()
	return mock.ListWritingPromptsFunc(ctx, count, level)
}

func (mock *promptCatalogMock) ListWritingPromptsCalls() []struct {
	Ctx   context.Context
	Count int
	Level domain.WritingLevel
} {
	mock.lockListWritingPrompts.RLock()
	calls := mock.calls.ListWritingPrompts
	mock.lockListWritingPrompts.RUnlock()
	return calls
}
