package domain

// Modality is the learning interaction type of a session.
type Modality string

const (
	ModalityFlashcard Modality = "FLASHCARD"
	ModalityQuiz      Modality = "QUIZ"
	ModalityWriting   Modality = "WRITING"
)

func (m Modality) String() string { return string(m) }

func (m Modality) IsValid() bool {
	switch m {
	case ModalityFlashcard, ModalityQuiz, ModalityWriting:
		return true
	}
	return false
}

// Binary reports whether responses of this modality carry a correctness flag.
func (m Modality) Binary() bool {
	return m == ModalityFlashcard || m == ModalityQuiz
}

// SessionStatus represents the lifecycle phase of a study session.
type SessionStatus string

const (
	SessionStatusInitializing SessionStatus = "INITIALIZING"
	SessionStatusActive       SessionStatus = "ACTIVE"
	SessionStatusComplete     SessionStatus = "COMPLETE"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusInitializing, SessionStatusActive, SessionStatusComplete:
		return true
	}
	return false
}

// WritingLevel is the proficiency level writing prompts are generated for.
type WritingLevel string

const (
	WritingLevelBeginner     WritingLevel = "beginner"
	WritingLevelIntermediate WritingLevel = "intermediate"
	WritingLevelAdvanced     WritingLevel = "advanced"
)

func (l WritingLevel) String() string { return string(l) }

func (l WritingLevel) IsValid() bool {
	switch l {
	case WritingLevelBeginner, WritingLevelIntermediate, WritingLevelAdvanced:
		return true
	}
	return false
}
