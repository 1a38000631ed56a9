// Package grading implements answer matching. Difficulty controls how much
// of the reference a guess has to get right: easy checks the book, medium
// adds the chapter, hard adds the verse.
package grading

import (
	"strings"

	"github.com/scripturemastery/server/internal/model"
)

// Service grades reference guesses against the actual reference
type Service struct{}

// New creates a new grading service
func New() *Service {
	return &Service{}
}

// Match reports whether guess is correct for the given difficulty
func (s *Service) Match(guess, actual model.Reference, difficulty model.Difficulty) bool {
	if !booksEqual(guess.Book, actual.Book) {
		return false
	}
	if difficulty == model.DifficultyEasy {
		return true
	}

	if guess.Chapter != actual.Chapter {
		return false
	}
	if difficulty == model.DifficultyMedium {
		return true
	}

	return versesEqual(guess.Verse, actual.Verse)
}

// booksEqual compares book names case- and whitespace-insensitively
func booksEqual(a, b string) bool {
	return normalizeBook(a) == normalizeBook(b)
}

func normalizeBook(book string) string {
	return strings.ToLower(strings.Join(strings.Fields(book), " "))
}

// versesEqual compares verse designators ignoring surrounding whitespace.
// Ranges must match exactly ("3-10" does not match "3").
func versesEqual(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
