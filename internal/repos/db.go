package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA journal_mode = WAL;

CREATE TABLE IF NOT EXISTS items(
  id          TEXT PRIMARY KEY,
  name        TEXT NOT NULL,
  category    TEXT NOT NULL,
  quantity    INTEGER NOT NULL DEFAULT 0,
  minQuantity INTEGER NOT NULL DEFAULT 1,
  unit        TEXT NOT NULL DEFAULT 'pcs',
  createdAt   TEXT NOT NULL,
  updatedAt   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_category_name ON items(category, name);
`
	_, err := db.Exec(schema)
	return err
}

// SeedIfEmpty inserts a handful of pantry staples when the table is empty.
// Safe to run on every startup.
func SeedIfEmpty(db *sqlx.DB, now string) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo items")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO items(id,name,category,quantity,minQuantity,unit,createdAt,updatedAt) VALUES
	  ('item-demo-milk','Milk','refrigerator',2,1,'L',?,?),
	  ('item-demo-eggs','Eggs','refrigerator',4,6,'pcs',?,?),
	  ('item-demo-soap','Dish soap','daily',1,1,'bottle',?,?),
	  ('item-demo-batteries','AA batteries','other',0,4,'pcs',?,?)`,
		now, now, now, now, now, now, now, now)

	return tx.Commit()
}
