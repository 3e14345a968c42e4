package sqlite

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT    NOT NULL UNIQUE,
    collection TEXT    NOT NULL,
    body       TEXT    NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
`

func applySchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
