package report

import (
	"github.com/conorfennell/knoldue/internal/domain"
	"github.com/conorfennell/knoldue/internal/parser"
	"github.com/conorfennell/knoldue/internal/storage"
)

// Load reads every record from the deck at path. SQLite files are picked by
// extension; everything else goes through the JSON/YAML parser.
func Load(path string) ([]domain.Record, error) {
	var (
		records []domain.Record
		err     error
	)
	if storage.IsDatabase(path) {
		records, err = loadDatabase(path)
	} else {
		records, err = parser.ParseFile(path)
	}
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return records, nil
}

func loadDatabase(path string) ([]domain.Record, error) {
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.LoadRecords()
}

// sourceKind names the loader used for path, for logging.
func sourceKind(path string) string {
	if storage.IsDatabase(path) {
		return "sqlite"
	}
	return parser.FormatOf(path).String()
}
