package domain

// Record is a single flashcard entry as read from a deck.
// Both fields are pointers so that an absent field can be told apart
// from an empty one.
type Record struct {
	Question   *string    `json:"question" yaml:"question" validate:"required"`
	NextReview *Timestamp `json:"next_review" yaml:"next_review" validate:"required"`
}

// Row is one rendered line of the due-date table.
type Row struct {
	Question   string
	NextReview string
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
