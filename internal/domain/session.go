package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Response is one learner action tied to one item.
type Response struct {
	ItemID         uuid.UUID
	SubmittedValue string
	// IsCorrect is nil for writing submissions.
	IsCorrect   *bool
	Explanation string
	Feedback    *Evaluation
	Timestamp   time.Time
}

// SessionState is the progress record of one session. It is a value: the
// transition functions below never mutate their input and return a new state.
type SessionState[I Item] struct {
	SessionID uuid.UUID
	Modality  Modality
	Items     []I
	Cursor    int
	Status    SessionStatus

	responses map[uuid.UUID]Response
	order     []uuid.UUID
}

// NewSessionState returns an empty state in the Initializing phase.
func NewSessionState[I Item](modality Modality) SessionState[I] {
	return SessionState[I]{
		Modality: modality,
		Status:   SessionStatusInitializing,
	}
}

// Start moves an Initializing state to Active with a fixed item sequence.
func Start[I Item](s SessionState[I], sessionID uuid.UUID, items []I) (SessionState[I], error) {
	if s.Status != SessionStatusInitializing {
		return s, fmt.Errorf("start session: %w: status is %s", ErrConflict, s.Status)
	}
	if len(items) == 0 {
		return s, fmt.Errorf("start session: %w", ErrEmptyCatalog)
	}

	next := s
	next.SessionID = sessionID
	next.Items = append([]I(nil), items...)
	next.Cursor = 0
	next.Status = SessionStatusActive
	next.responses = make(map[uuid.UUID]Response, len(items))
	next.order = make([]uuid.UUID, 0, len(items))
	return next, nil
}

// ExpectCurrent returns nil when itemID may be answered now. It reports
// ErrSessionAlreadyComplete or ErrOutOfOrderResponse otherwise.
func ExpectCurrent[I Item](s SessionState[I], itemID uuid.UUID) error {
	switch s.Status {
	case SessionStatusComplete:
		return ErrSessionAlreadyComplete
	case SessionStatusActive:
	default:
		return fmt.Errorf("%w: session is %s", ErrConflict, s.Status)
	}

	current := s.Items[s.Cursor].ItemID()
	if itemID != current {
		return fmt.Errorf("%w: got item %s, current item is %s", ErrOutOfOrderResponse, itemID, current)
	}
	return nil
}

// Advance records r against the current item and moves the cursor forward.
// On error the returned state is s unchanged.
func Advance[I Item](s SessionState[I], r Response) (SessionState[I], error) {
	if err := ExpectCurrent(s, r.ItemID); err != nil {
		return s, err
	}

	next := s.clone()
	next.put(r)
	next.Cursor++
	if next.Cursor == len(next.Items) {
		next.Status = SessionStatusComplete
	}
	return next, nil
}

// Restore rebuilds a state from persisted items and the responses recorded so
// far. The answered prefix ends at the first item without a response;
// responses stored after that gap are dropped so the items are asked again.
// resumeAt must equal the length of the prefix.
func Restore[I Item](sessionID uuid.UUID, modality Modality, items []I, responses []Response, resumeAt int) (SessionState[I], error) {
	s := NewSessionState[I](modality)
	s, err := Start(s, sessionID, items)
	if err != nil {
		return s, err
	}

	known := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		known[it.ItemID()] = struct{}{}
	}
	byItem := make(map[uuid.UUID]Response, len(responses))
	for _, r := range responses {
		if _, ok := known[r.ItemID]; !ok {
			return s, NewValidationError("responses", fmt.Sprintf("response for unknown item %s", r.ItemID))
		}
		byItem[r.ItemID] = r
	}

	for _, it := range s.Items {
		r, ok := byItem[it.ItemID()]
		if !ok {
			break
		}
		s.put(r)
	}
	if resumeAt != len(s.order) {
		return s, NewValidationError("current_question_index",
			fmt.Sprintf("must equal the index of the first unanswered item (%d), got %d", len(s.order), resumeAt))
	}

	s.Cursor = len(s.order)
	if s.Cursor == len(s.Items) {
		s.Status = SessionStatusComplete
	}
	return s, nil
}

// Current returns the item at the cursor. ok is false once the session is
// complete or not yet started.
func (s SessionState[I]) Current() (item I, ok bool) {
	if s.Status != SessionStatusActive {
		return item, false
	}
	return s.Items[s.Cursor], true
}

// Response returns the response recorded for itemID.
func (s SessionState[I]) Response(itemID uuid.UUID) (Response, bool) {
	r, ok := s.responses[itemID]
	return r, ok
}

// Responses returns recorded responses in answer order.
func (s SessionState[I]) Responses() []Response {
	out := make([]Response, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.responses[id])
	}
	return out
}

// AnsweredCount returns the number of distinct items answered.
func (s SessionState[I]) AnsweredCount() int { return len(s.order) }

func (s SessionState[I]) clone() SessionState[I] {
	next := s
	next.responses = make(map[uuid.UUID]Response, len(s.responses)+1)
	for k, v := range s.responses {
		next.responses[k] = v
	}
	next.order = append(make([]uuid.UUID, 0, len(s.order)+1), s.order...)
	return next
}

// put stores r, replacing an earlier response for the same item in place.
func (s *SessionState[I]) put(r Response) {
	if _, exists := s.responses[r.ItemID]; !exists {
		s.order = append(s.order, r.ItemID)
	}
	s.responses[r.ItemID] = r
}
