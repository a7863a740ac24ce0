package report

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/conorfennell/knoldue/internal/domain"
)

// DefaultTimeFormat renders instants as YYYY-MM-DD HH:MM:SS.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

// maxSeconds keeps the conversion to int64 exact; the year check below is
// the real bound.
const maxSeconds = 1 << 53

var errOutOfRange = errors.New("out of range")

// FormatTimestamp renders ts in loc using the strftime layout.
// Sub-second values are rounded to the microsecond and then dropped.
func FormatTimestamp(ts *domain.Timestamp, loc *time.Location, layout string) (string, error) {
	seconds, ok := ts.Epoch()
	if !ok {
		return "", errNotNumeric
	}

	micros := math.RoundToEven(seconds * 1e6)
	whole := math.Floor(micros / 1e6)
	if math.IsInf(micros, 0) || math.Abs(whole) > maxSeconds {
		return "", errOutOfRange
	}

	t := time.Unix(int64(whole), int64(micros-whole*1e6)*int64(time.Microsecond)).In(loc)
	if y := t.Year(); y < 1 || y > 9999 {
		return "", fmt.Errorf("%w: year %d", errOutOfRange, y)
	}
	return strftime.Format(layout, t), nil
}

// Format converts sorted records into table rows.
func (r *Reporter) Format(records []domain.Record) ([]domain.Row, error) {
	rows := make([]domain.Row, 0, len(records))
	for i, rec := range records {
		fields, err := missingFields(rec)
		if err != nil {
			return nil, err
		}
		for _, field := range []string{fieldQuestion, fieldNextReview} {
			if slices.Contains(fields, field) {
				return nil, &SchemaError{Index: i, Field: field}
			}
		}

		date, err := FormatTimestamp(rec.NextReview, r.loc, r.layout)
		if err != nil {
			return nil, &FormatError{Index: i, Value: rec.NextReview.String(), Err: err}
		}
		rows = append(rows, domain.Row{
			Question:   *rec.Question,
			NextReview: date,
		})
	}
	return rows, nil
}
