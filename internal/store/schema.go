package store

// seq carries display order: new rows take a smaller seq than every
// existing row, so ORDER BY seq lists the most recently added first.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id                   TEXT PRIMARY KEY,
    seq                  INTEGER NOT NULL,
    title                TEXT NOT NULL,
    amount               TEXT NOT NULL,
    category             TEXT NOT NULL,
    date                 TEXT NOT NULL,
    description          TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_expenses_seq ON expenses(seq);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
`
