package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"homestock/internal/domain"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// List returns every item ordered by (category, name). Case-sensitive,
// sqlite BINARY collation.
func (r *ItemRepo) List() ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT id, name, category, quantity, minQuantity, unit, createdAt, updatedAt
	  FROM items
	  ORDER BY category, name
	`)
	return out, err
}

func (r *ItemRepo) Get(id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
	  SELECT id, name, category, quantity, minQuantity, unit, createdAt, updatedAt
	  FROM items
	  WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return domain.Item{}, domain.ErrNotFound
	}
	return it, err
}

// Insert fails with ErrConflict when the id already exists.
func (r *ItemRepo) Insert(it domain.Item) error {
	_, err := r.db.Exec(`
	  INSERT INTO items(id, name, category, quantity, minQuantity, unit, createdAt, updatedAt)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, it.ID, it.Name, it.Category, it.Quantity, it.MinQuantity, it.Unit, it.CreatedAt, it.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrConflict
	}
	return err
}

// Update writes the complete mutable field set. Zero rows affected means
// the id is absent.
func (r *ItemRepo) Update(it domain.Item) error {
	res, err := r.db.Exec(`
	  UPDATE items
	  SET name = ?, category = ?, quantity = ?, minQuantity = ?, unit = ?, updatedAt = ?
	  WHERE id = ?
	`, it.Name, it.Category, it.Quantity, it.MinQuantity, it.Unit, it.UpdatedAt, it.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM items`)
	return n, err
}
