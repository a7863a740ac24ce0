package report

import (
	"errors"
	"testing"
	"time"

	"github.com/conorfennell/knoldue/internal/domain"
)

func TestFormatTimestamp(t *testing.T) {
	plusOne := time.FixedZone("UTC+1", 3600)

	testCases := []struct {
		name     string
		ts       *domain.Timestamp
		loc      *time.Location
		layout   string
		expected string
	}{
		{name: "Epoch in UTC", ts: domain.Seconds(0), loc: time.UTC, layout: DefaultTimeFormat, expected: "1970-01-01 00:00:00"},
		{name: "Epoch with local offset", ts: domain.Seconds(0), loc: plusOne, layout: DefaultTimeFormat, expected: "1970-01-01 01:00:00"},
		{name: "Recent instant", ts: domain.Seconds(1700000000), loc: time.UTC, layout: DefaultTimeFormat, expected: "2023-11-14 22:13:20"},
		{name: "Fraction is dropped", ts: domain.Seconds(100.75), loc: time.UTC, layout: DefaultTimeFormat, expected: "1970-01-01 00:01:40"},
		{name: "Rounded to the microsecond", ts: domain.Seconds(1.9999999), loc: time.UTC, layout: DefaultTimeFormat, expected: "1970-01-01 00:00:02"},
		{name: "Negative fraction", ts: domain.Seconds(-1.5), loc: time.UTC, layout: DefaultTimeFormat, expected: "1969-12-31 23:59:58"},
		{name: "Last representable second", ts: domain.Seconds(253402300799), loc: time.UTC, layout: DefaultTimeFormat, expected: "9999-12-31 23:59:59"},
		{name: "Custom layout", ts: domain.Seconds(86400), loc: time.UTC, layout: "%d/%m/%Y", expected: "02/01/1970"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatTimestamp(tc.ts, tc.loc, tc.layout)
			if err != nil {
				t.Fatalf("FormatTimestamp() returned an unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected %q, but got %q", tc.expected, got)
			}
		})
	}
}

func TestFormatTimestampErrors(t *testing.T) {
	testCases := []struct {
		name string
		ts   *domain.Timestamp
		want error
	}{
		{name: "Text", ts: domain.Raw(`"soon"`), want: errNotNumeric},
		{name: "Year 10000", ts: domain.Seconds(253402300800), want: errOutOfRange},
		{name: "Year 0", ts: domain.Seconds(-62135596801), want: errOutOfRange},
		{name: "Beyond int64", ts: domain.Seconds(1e300), want: errOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormatTimestamp(tc.ts, time.UTC, DefaultTimeFormat)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, but got %v", tc.want, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	r := New(nil, Config{Location: time.UTC})

	rows, err := r.Format([]domain.Record{
		{Question: domain.StringPtr("1+1"), NextReview: domain.Seconds(100)},
		{Question: domain.StringPtr(""), NextReview: domain.Seconds(200)},
	})
	if err != nil {
		t.Fatalf("Format() returned an unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, but got %d", len(rows))
	}
	if rows[0] != (domain.Row{Question: "1+1", NextReview: "1970-01-01 00:01:40"}) {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if rows[1].Question != "" {
		t.Errorf("Expected an empty question to be kept, got %q", rows[1].Question)
	}

	_, err = r.Format([]domain.Record{
		{Question: domain.StringPtr("ok"), NextReview: domain.Seconds(1)},
		{NextReview: domain.Seconds(2)},
	})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Index != 1 || schemaErr.Field != "question" {
		t.Errorf("Expected a SchemaError for question at index 1, got %v", err)
	}

	_, err = r.Format([]domain.Record{
		{Question: domain.StringPtr("bad"), NextReview: domain.Raw("true")},
	})
	var formatErr *FormatError
	if !errors.As(err, &formatErr) || formatErr.Value != "true" {
		t.Errorf("Expected a FormatError for true, got %v", err)
	}
}
