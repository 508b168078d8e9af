package catalog

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ promptGenerator = &promptGeneratorMock{}

type promptGeneratorMock struct {
	GeneratePromptsFunc func(ctx context.Context, count int, level domain.WritingLevel) ([]string, error)

	calls struct {
		GeneratePrompts []struct {
			Ctx   context.Context
			Count int
			Level domain.WritingLevel
		}
	}
	lockGeneratePrompts sync.RWMutex
}

func (mock *promptGeneratorMock) GeneratePrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error) {
	if mock.GeneratePromptsFunc == nil {
		panic("promptGeneratorMock.GeneratePromptsFunc: method is nil but promptGenerator.GeneratePrompts was just called")
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
	mock.lockGeneratePrompts.Lock()
	mock.calls.GeneratePrompts = append(mock.calls.GeneratePrompts, callInfo)
	mock.lockGeneratePrompts.Unlock()
	return mock.GeneratePromptsFunc(ctx, count, level)
}

func (mock *promptGeneratorMock) GeneratePromptsCalls() []struct {
	Ctx   context.Context
	Count int
	Level domain.WritingLevel
} {
	mock.lockGeneratePrompts.RLock()
	calls := mock.calls.GeneratePrompts
	mock.lockGeneratePrompts.RUnlock()
	return calls
}
