package report

import (
	"cmp"
	"errors"
	"slices"

	"github.com/conorfennell/knoldue/internal/domain"
)

const (
	fieldQuestion   = "question"
	fieldNextReview = "next_review"
)

var errNotNumeric = errors.New("not a number")

// Sort returns a copy of records ordered by next_review, earliest first.
// Records with equal instants keep their input order. records is not modified.
func Sort(records []domain.Record) ([]domain.Record, error) {
	type keyed struct {
		record  domain.Record
		seconds float64
	}

	keys := make([]keyed, len(records))
	for i, r := range records {
		missing, err := lacks(r, fieldNextReview)
		if err != nil {
			return nil, err
		}
		if missing {
			return nil, &SchemaError{Index: i, Field: fieldNextReview}
		}
		seconds, ok := r.NextReview.Epoch()
		if !ok {
			return nil, &FormatError{Index: i, Value: r.NextReview.String(), Err: errNotNumeric}
		}
		keys[i] = keyed{record: r, seconds: seconds}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		return cmp.Compare(a.seconds, b.seconds)
	})

	sorted := make([]domain.Record, len(keys))
	for i, k := range keys {
		sorted[i] = k.record
	}
	return sorted, nil
}
