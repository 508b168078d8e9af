package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary entry in the catalog.
type Word struct {
	ID         uuid.UUID
	SourceText string
	TargetText string
	CreatedAt  time.Time
}

// Item converts the word into a flashcard item.
func (w Word) Item() WordItem {
	return WordItem{ID: w.ID, SourceText: w.SourceText, TargetText: w.TargetText}
}

// Group is a named collection of words.
type Group struct {
	ID        uuid.UUID
	Name      string
	WordCount int
	CreatedAt time.Time
}

// WordFilter restricts the catalog to a group. A nil GroupID means all words.
type WordFilter struct {
	GroupID *uuid.UUID
}

// IsAll reports whether the filter selects the whole catalog.
func (f WordFilter) IsAll() bool { return f.GroupID == nil }

func (f WordFilter) String() string {
	if f.GroupID == nil {
		return "all"
	}
	return "group:" + f.GroupID.String()
}
