package sqlite

import "database/sql"

const upsertSQL = `
	INSERT INTO config (grp, key, value, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (grp, key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

// storeTx groups several writes into one commit
type storeTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx() (*storeTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

// set inserts or updates a value
func (t *storeTx) set(group, key, value string) error {
	_, err := t.tx.Exec(upsertSQL, group, key, value)
	return err
}

// commit commits the transaction
func (t *storeTx) commit() error {
	return t.tx.Commit()
}

// rollback aborts the transaction
func (t *storeTx) rollback() error {
	return t.tx.Rollback()
}
