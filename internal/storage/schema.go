package storage

// Schema creates the flashcards table that LoadRecords reads from. Open
// never executes it, since decks are opened read-only; it is the layout to
// use when creating a deck, as the tests do. The columns follow the JSON deck
// fields and next_review holds epoch seconds.
const Schema = `
CREATE TABLE IF NOT EXISTS flashcards (
    question TEXT,
    answer TEXT,
    guidance TEXT,
    interval INTEGER DEFAULT 0,
    repetitions INTEGER DEFAULT 0,
    ease_factor REAL DEFAULT 2.5,
    next_review INTEGER
);
`
