package catalog

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"sync"
)

var _ wordWriter = &wordWriterMock{}

type wordWriterMock struct {
	AddToGroupFunc  func(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error
	UpsertGroupFunc func(ctx context.Context, name string) (domain.Group, error)
	UpsertWordFunc  func(ctx context.Context, sourceText string, targetText string) (domain.Word, error)

	calls struct {
		AddToGroup []struct {
			Ctx     context.Context
			GroupID uuid.UUID
			WordIDs []uuid.UUID
		}
		UpsertGroup []struct {
			Ctx  context.Context
			Name string
		}
		UpsertWord []struct {
			Ctx        context.Context
			SourceText string
			TargetText string
		}
	}
	lockAddToGroup  sync.RWMutex
	lockUpsertGroup sync.RWMutex
	lockUpsertWord  sync.RWMutex
}

func (mock *wordWriterMock) AddToGroup(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error {
	if mock.AddToGroupFunc == nil {
		panic("wordWriterMock.AddToGroupFunc: method is nil but wordWriter.AddToGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
		WordIDs []uuid.UUID
	}{
		Ctx:     ctx,
		GroupID: groupID,
		WordIDs: wordIDs,
	}
	mock.lockAddToGroup.Lock()
	mock.calls.AddToGroup = append(mock.calls.AddToGroup, callInfo)
	mock.lockAddToGroup.Unlock()
	return mock.AddToGroupFunc(ctx, groupID, wordIDs)
}

func (mock *wordWriterMock) AddToGroupCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
	WordIDs []uuid.UUID
} {
	mock.lockAddToGroup.RLock()
	calls := mock.calls.AddToGroup
	mock.lockAddToGroup.RUnlock()
	return calls
}

func (mock *wordWriterMock) UpsertGroup(ctx context.Context, name string) (domain.Group, error) {
	if mock.UpsertGroupFunc == nil {
		panic("wordWriterMock.UpsertGroupFunc: method is nil but wordWriter.UpsertGroup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockUpsertGroup.Lock()
	mock.calls.UpsertGroup = append(mock.calls.UpsertGroup, callInfo)
	mock.lockUpsertGroup.Unlock()
	return mock.UpsertGroupFunc(ctx, name)
}

func (mock *wordWriterMock) UpsertGroupCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockUpsertGroup.RLock()
	calls := mock.calls.UpsertGroup
	mock.lockUpsertGroup.RUnlock()
	return calls
}

func (mock *wordWriterMock) UpsertWord(ctx context.Context, sourceText string, targetText string) (domain.Word, error) {
	if mock.UpsertWordFunc == nil {
		panic("wordWriterMock.UpsertWordFunc: method is nil but wordWriter.UpsertWord was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SourceText string
		TargetText string
	}{
		Ctx:        ctx,
		SourceText: sourceText,
		TargetText: targetText,
	}
	mock.lockUpsertWord.Lock()
	mock.calls.UpsertWord = append(mock.calls.UpsertWord, callInfo)
	mock.lockUpsertWord.Unlock()
	return mock.UpsertWordFunc(ctx, sourceText, targetText)
}

func (mock *wordWriterMock) UpsertWordCalls() []struct {
	Ctx        context.Context
	SourceText string
	TargetText string
} {
	mock.lockUpsertWord.RLock()
	calls := mock.calls.UpsertWord
	mock.lockUpsertWord.RUnlock()
	return calls
}
