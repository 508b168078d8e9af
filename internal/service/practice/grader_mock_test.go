package practice

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ grader = &graderMock{}

type graderMock struct {
	ExplainFunc func(ctx context.Context, q domain.QuestionItem, selected string) (string, error)

	calls struct {
		Explain []struct {
			Ctx      context.Context
			Q        domain.QuestionItem
			Selected string
		}
	}
	lockExplain sync.RWMutex
}

func (mock *graderMock) Explain(ctx context.Context, q domain.QuestionItem, selected string) (string, error) {
	if mock.ExplainFunc == nil {
		panic("graderMock.ExplainFunc: method is nil but grader.Explain was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Q        domain.QuestionItem
		Selected string
	}{
		Ctx:      ctx,
		Q:        q,
		Selected: selected,
	}
	mock.lockExplain.Lock()
	mock.calls.Explain = append(mock.calls.Explain, callInfo)
	mock.lockExplain.Unlock()
	return mock.ExplainFunc(ctx, q, selected)
}

func (mock *graderMock) ExplainCalls() []struct {
	Ctx      context.Context
	Q        domain.QuestionItem
	Selected string
} {
	mock.lockExplain.RLock()
	calls := mock.calls.Explain
	mock.lockExplain.RUnlock()
	return calls
}
