package practice

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ evaluator = &evaluatorMock{}

type evaluatorMock struct {
	EvaluateFunc func(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error)

	calls struct {
		Evaluate []struct {
			Ctx    context.Context
			Prompt domain.WritingPromptItem
			Text   string
		}
	}
	lockEvaluate sync.RWMutex
}

func (mock *evaluatorMock) Evaluate(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error) {
	if mock.EvaluateFunc == nil {
		panic("evaluatorMock.EvaluateFunc: method is nil but evaluator.Evaluate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt domain.WritingPromptItem
		Text   string
	}{
		Ctx:    ctx,
		Prompt: prompt,
		Text:   text,
	}
	mock.lockEvaluate.Lock()
	mock.calls.Evaluate = append(mock.calls.Evaluate, callInfo)
	mock.lockEvaluate.Unlock()
	return mock.EvaluateFunc(ctx, prompt, text)
}

func (mock *evaluatorMock) EvaluateCalls() []struct {
	Ctx    context.Context
	Prompt domain.WritingPromptItem
	Text   string
} {
	mock.lockEvaluate.RLock()
	calls := mock.calls.Evaluate
	mock.lockEvaluate.RUnlock()
	return calls
}
