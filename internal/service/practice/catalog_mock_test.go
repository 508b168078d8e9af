package practice

import (
	"context"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ catalog = &catalogMock{}

type catalogMock struct {
	ListQuestionsFunc func(ctx context.Context, count int, filter domain.WordFilter) ([]domain.QuestionItem, error)
	ListWordsFunc     func(ctx context.Context, filter domain.WordFilter) ([]domain.WordItem, error)

	calls struct {
		ListQuestions []struct {
			Ctx    context.Context
			Count  int
			Filter domain.WordFilter
		}
		ListWords []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
	}
	lockListQuestions sync.RWMutex
	lockListWords     sync.RWMutex
}

func (mock *catalogMock) ListQuestions(ctx context.Context, count int, filter domain.WordFilter) ([]domain.QuestionItem, error) {
	if mock.ListQuestionsFunc == nil {
		panic("catalogMock.ListQuestionsFunc: method is nil but catalog.ListQuestions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Count  int
		Filter domain.WordFilter
	}{
		Ctx:    ctx,
		Count:  count,
		Filter: filter,
	}
	mock.lockListQuestions.Lock()
	mock.calls.ListQuestions = append(mock.calls.ListQuestions, callInfo)
	mock.lockListQuestions.Unlock()
	return mock.ListQuestionsFunc(ctx, count, filter)
}

func (mock *catalogMock) ListQuestionsCalls() []struct {
	Ctx    context.Context
	Count  int
	Filter domain.WordFilter
} {
	mock.lockListQuestions.RLock()
	calls := mock.calls.ListQuestions
	mock.lockListQuestions.RUnlock()
	return calls
}

func (mock *catalogMock) ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.WordItem, error) {
	if mock.ListWordsFunc == nil {
		panic("catalogMock.ListWordsFunc: method is nil but catalog.ListWords was just called")
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

func (mock *catalogMock) ListWordsCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
