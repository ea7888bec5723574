package feedback

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewFeedback(t *testing.T) {
	tests := []struct {
		name      string
		profileID string
		rating    int
		wantErr   error
	}{
		{"valid", "p1", 4, nil},
		{"missing profile", " ", 4, ErrProfileRequired},
		{"rating too low", "p1", 0, ErrInvalidRating},
		{"rating too high", "p1", 6, ErrInvalidRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFeedback(tt.profileID, 1, "Instagram", tt.rating, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFeedback() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFeedbackTruncatesNote(t *testing.T) {
	f, err := NewFeedback("p1", 3, "Instagram", 5, strings.Repeat("é", 800))
	if err != nil {
		t.Fatalf("NewFeedback() error = %v", err)
	}
	if n := utf8.RuneCountInString(f.Note()); n != MaxNoteLength {
		t.Errorf("note has %d runes, want %d", n, MaxNoteLength)
	}
	if f.Platform() != "instagram" {
		t.Errorf("Platform() = %q", f.Platform())
	}
}
