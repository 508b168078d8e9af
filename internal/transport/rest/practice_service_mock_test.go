package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/internal/service/practice"
	"sync"
)

var _ practiceService = &practiceServiceMock{}

type practiceServiceMock struct {
	AbandonFunc            func(ctx context.Context, sessionID uuid.UUID) error
	AnswerFlashcardFunc    func(ctx context.Context, in practice.AnswerFlashcardInput) (practice.AdvanceOutput, error)
	AnswerQuizFunc         func(ctx context.Context, in practice.AnswerQuizInput) (practice.AdvanceOutput, error)
	CurrentFunc            func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	HistoryFunc            func(ctx context.Context, limit int) ([]*domain.SessionRecord, error)
	ListWritingPromptsFunc func(ctx context.Context, in practice.ListPromptsInput) ([]string, error)
	ResumeQuizFunc         func(ctx context.Context, in practice.ResumeQuizInput) (practice.SessionView, error)
	RetryWritingFunc       func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	StartFlashcardsFunc    func(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartQuizFunc          func(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartWritingFunc       func(ctx context.Context, in practice.StartWritingInput) (practice.SessionView, error)
	SubmitWritingFunc      func(ctx context.Context, in practice.SubmitWritingInput) (practice.AdvanceOutput, error)
	SummaryFunc            func(ctx context.Context, sessionID uuid.UUID) (domain.Summary, error)
	SyncFunc               func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)

	calls struct {
		Abandon []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		AnswerFlashcard []struct {
			Ctx context.Context
			In  practice.AnswerFlashcardInput
		}
		AnswerQuiz []struct {
			Ctx context.Context
			In  practice.AnswerQuizInput
		}
		Current []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		History []struct {
			Ctx   context.Context
			Limit int
		}
		ListWritingPrompts []struct {
			Ctx context.Context
			In  practice.ListPromptsInput
		}
		ResumeQuiz []struct {
			Ctx context.Context
			In  practice.ResumeQuizInput
		}
		RetryWriting []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		StartFlashcards []struct {
			Ctx context.Context
			In  practice.StartInput
		}
		StartQuiz []struct {
			Ctx context.Context
			In  practice.StartInput
		}
		StartWriting []struct {
			Ctx context.Context
			In  practice.StartWritingInput
		}
		SubmitWriting []struct {
			Ctx context.Context
			In  practice.SubmitWritingInput
		}
		Summary []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		Sync []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockAbandon            sync.RWMutex
	lockAnswerFlashcard    sync.RWMutex
	lockAnswerQuiz         sync.RWMutex
	lockCurrent            sync.RWMutex
	lockHistory            sync.RWMutex
	lockListWritingPrompts sync.RWMutex
	lockResumeQuiz         sync.RWMutex
	lockRetryWriting       sync.RWMutex
	lockStartFlashcards    sync.RWMutex
	lockStartQuiz          sync.RWMutex
	lockStartWriting       sync.RWMutex
	lockSubmitWriting      sync.RWMutex
	lockSummary            sync.RWMutex
	lockSync               sync.RWMutex
}

func (mock *practiceServiceMock) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	if mock.AbandonFunc == nil {
		panic("practiceServiceMock.AbandonFunc: method is nil but practiceService.Abandon was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockAbandon.Lock()
	mock.calls.Abandon = append(mock.calls.Abandon, callInfo)
	mock.lockAbandon.Unlock()
	return mock.AbandonFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) AbandonCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockAbandon.RLock()
	calls := mock.calls.Abandon
	mock.lockAbandon.RUnlock()
	return calls
}

func (mock *practiceServiceMock) AnswerFlashcard(ctx context.Context, in practice.AnswerFlashcardInput) (practice.AdvanceOutput, error) {
	if mock.AnswerFlashcardFunc == nil {
		panic("practiceServiceMock.AnswerFlashcardFunc: method is nil but practiceService.AnswerFlashcard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.AnswerFlashcardInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockAnswerFlashcard.Lock()
	mock.calls.AnswerFlashcard = append(mock.calls.AnswerFlashcard, callInfo)
	mock.lockAnswerFlashcard.Unlock()
	return mock.AnswerFlashcardFunc(ctx, in)
}

func (mock *practiceServiceMock) AnswerFlashcardCalls() []struct {
	Ctx context.Context
	In  practice.AnswerFlashcardInput
} {
	mock.lockAnswerFlashcard.RLock()
	calls := mock.calls.AnswerFlashcard
	mock.lockAnswerFlashcard.RUnlock()
	return calls
}

func (mock *practiceServiceMock) AnswerQuiz(ctx context.Context, in practice.AnswerQuizInput) (practice.AdvanceOutput, error) {
	if mock.AnswerQuizFunc == nil {
		panic("practiceServiceMock.AnswerQuizFunc: method is nil but practiceService.AnswerQuiz was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.AnswerQuizInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockAnswerQuiz.Lock()
	mock.calls.AnswerQuiz = append(mock.calls.AnswerQuiz, callInfo)
	mock.lockAnswerQuiz.Unlock()
	return mock.AnswerQuizFunc(ctx, in)
}

func (mock *practiceServiceMock) AnswerQuizCalls() []struct {
	Ctx context.Context
	In  practice.AnswerQuizInput
} {
	mock.lockAnswerQuiz.RLock()
	calls := mock.calls.AnswerQuiz
	mock.lockAnswerQuiz.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Current(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error) {
	if mock.CurrentFunc == nil {
		panic("practiceServiceMock.CurrentFunc: method is nil but practiceService.Current was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) CurrentCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *practiceServiceMock) History(ctx context.Context, limit int) ([]*domain.SessionRecord, error) {
	if mock.HistoryFunc == nil {
		panic("practiceServiceMock.HistoryFunc: method is nil but practiceService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, limit)
}

func (mock *practiceServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *practiceServiceMock) ListWritingPrompts(ctx context.Context, in practice.ListPromptsInput) ([]string, error) {
	if mock.ListWritingPromptsFunc == nil {
		panic("practiceServiceMock.ListWritingPromptsFunc: method is nil but practiceService.ListWritingPrompts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.ListPromptsInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockListWritingPrompts.Lock()
	mock.calls.ListWritingPrompts = append(mock.calls.ListWritingPrompts, callInfo)
	mock.lockListWritingPrompts.Unlock()
	return mock.ListWritingPromptsFunc(ctx, in)
}

func (mock *practiceServiceMock) ListWritingPromptsCalls() []struct {
	Ctx context.Context
	In  practice.ListPromptsInput
} {
	mock.lockListWritingPrompts.RLock()
	calls := mock.calls.ListWritingPrompts
	mock.lockListWritingPrompts.RUnlock()
	return calls
}

func (mock *practiceServiceMock) ResumeQuiz(ctx context.Context, in practice.ResumeQuizInput) (practice.SessionView, error) {
	if mock.ResumeQuizFunc == nil {
		panic("practiceServiceMock.ResumeQuizFunc: method is nil but practiceService.ResumeQuiz was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.ResumeQuizInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockResumeQuiz.Lock()
	mock.calls.ResumeQuiz = append(mock.calls.ResumeQuiz, callInfo)
	mock.lockResumeQuiz.Unlock()
	return mock.ResumeQuizFunc(ctx, in)
}

func (mock *practiceServiceMock) ResumeQuizCalls() []struct {
	Ctx context.Context
	In  practice.ResumeQuizInput
} {
	mock.lockResumeQuiz.RLock()
	calls := mock.calls.ResumeQuiz
	mock.lockResumeQuiz.RUnlock()
	return calls
}

func (mock *practiceServiceMock) RetryWriting(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error) {
	if mock.RetryWritingFunc == nil {
		panic("practiceServiceMock.RetryWritingFunc: method is nil but practiceService.RetryWriting was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockRetryWriting.Lock()
	mock.calls.RetryWriting = append(mock.calls.RetryWriting, callInfo)
	mock.lockRetryWriting.Unlock()
	return mock.RetryWritingFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) RetryWritingCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockRetryWriting.RLock()
	calls := mock.calls.RetryWriting
	mock.lockRetryWriting.RUnlock()
	return calls
}

func (mock *practiceServiceMock) StartFlashcards(ctx context.Context, in practice.StartInput) (practice.SessionView, error) {
	if mock.StartFlashcardsFunc == nil {
		panic("practiceServiceMock.StartFlashcardsFunc: method is nil but practiceService.StartFlashcards was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.StartInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockStartFlashcards.Lock()
	mock.calls.StartFlashcards = append(mock.calls.StartFlashcards, callInfo)
	mock.lockStartFlashcards.Unlock()
	return mock.StartFlashcardsFunc(ctx, in)
}

func (mock *practiceServiceMock) StartFlashcardsCalls() []struct {
	Ctx context.Context
	In  practice.StartInput
} {
	mock.lockStartFlashcards.RLock()
	calls := mock.calls.StartFlashcards
	mock.lockStartFlashcards.RUnlock()
	return calls
}

func (mock *practiceServiceMock) StartQuiz(ctx context.Context, in practice.StartInput) (practice.SessionView, error) {
	if mock.StartQuizFunc == nil {
		panic("practiceServiceMock.StartQuizFunc: method is nil but practiceService.StartQuiz was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.StartInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockStartQuiz.Lock()
	mock.calls.StartQuiz = append(mock.calls.StartQuiz, callInfo)
	mock.lockStartQuiz.Unlock()
	return mock.StartQuizFunc(ctx, in)
}

func (mock *practiceServiceMock) StartQuizCalls() []struct {
	Ctx context.Context
	In  practice.StartInput
} {
	mock.lockStartQuiz.RLock()
	calls := mock.calls.StartQuiz
	mock.lockStartQuiz.RUnlock()
	return calls
}

func (mock *practiceServiceMock) StartWriting(ctx context.Context, in practice.StartWritingInput) (practice.SessionView, error) {
	if mock.StartWritingFunc == nil {
		panic("practiceServiceMock.StartWritingFunc: method is nil but practiceService.StartWriting was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.StartWritingInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockStartWriting.Lock()
	mock.calls.StartWriting = append(mock.calls.StartWriting, callInfo)
	mock.lockStartWriting.Unlock()
	return mock.StartWritingFunc(ctx, in)
}

func (mock *practiceServiceMock) StartWritingCalls() []struct {
	Ctx context.Context
	In  practice.StartWritingInput
} {
	mock.lockStartWriting.RLock()
	calls := mock.calls.StartWriting
	mock.lockStartWriting.RUnlock()
	return calls
}

func (mock *practiceServiceMock) SubmitWriting(ctx context.Context, in practice.SubmitWritingInput) (practice.AdvanceOutput, error) {
	if mock.SubmitWritingFunc == nil {
		panic("practiceServiceMock.SubmitWritingFunc: method is nil but practiceService.SubmitWriting was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  practice.SubmitWritingInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSubmitWriting.Lock()
	mock.calls.SubmitWriting = append(mock.calls.SubmitWriting, callInfo)
	mock.lockSubmitWriting.Unlock()
	return mock.SubmitWritingFunc(ctx, in)
}

func (mock *practiceServiceMock) SubmitWritingCalls() []struct {
	Ctx context.Context
	In  practice.SubmitWritingInput
} {
	mock.lockSubmitWriting.RLock()
	calls := mock.calls.SubmitWriting
	mock.lockSubmitWriting.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Summary(ctx context.Context, sessionID uuid.UUID) (domain.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("practiceServiceMock.SummaryFunc: method is nil but practiceService.Summary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) SummaryCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Sync(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error) {
	if mock.SyncFunc == nil {
		panic("practiceServiceMock.SyncFunc: method is nil but practiceService.Sync was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) SyncCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}
