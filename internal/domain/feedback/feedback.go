// Package feedback records how users rate generated posts.
package feedback

import (
	"context"
	"errors"
	"strings"
	"time"
)

const MaxNoteLength = 500

var (
	ErrProfileRequired = errors.New("profile_id is required")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type Feedback struct {
	id        uint
	profileID string
	postDay   int
	platform  string
	rating    int
	note      string
	createdAt time.Time
}

// NewFeedback validates the rating and truncates the note to MaxNoteLength runes.
func NewFeedback(profileID string, postDay int, platform string, rating int, note string) (*Feedback, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrProfileRequired
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	note = strings.TrimSpace(note)
	if r := []rune(note); len(r) > MaxNoteLength {
		note = string(r[:MaxNoteLength])
	}
	return &Feedback{
		profileID: profileID,
		postDay:   postDay,
		platform:  strings.ToLower(strings.TrimSpace(platform)),
		rating:    rating,
		note:      note,
		createdAt: time.Now().UTC(),
	}, nil
}

func (f *Feedback) ID() uint             { return f.id }
func (f *Feedback) ProfileID() string    { return f.profileID }
func (f *Feedback) PostDay() int         { return f.postDay }
func (f *Feedback) Platform() string     { return f.platform }
func (f *Feedback) Rating() int          { return f.rating }
func (f *Feedback) Note() string         { return f.note }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }

func (f *Feedback) SetID(id uint) {
	f.id = id
}

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
}
