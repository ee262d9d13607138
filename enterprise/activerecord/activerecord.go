// Package activerecord demonstrates the Active Record pattern: the Product
// entity carries its own persistence, with Insert, Update and Delete as
// methods on the record, and package level finders to load records back.
//
// The records talk to a package level database handle bound by Open or
// OpenInMemory. That piece of global state is the deliberate cost of the
// pattern; it keeps call sites short, and in exchange every test and every
// caller shares one connection. The repository study shows the inverse
// trade, where persistence hides behind explicitly passed ports.
package activerecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"go.llib.dev/exemplar/pkg/errorkit"
)

const (
	// ErrNotPersisted is returned when Update or Delete runs on a record
	// that has no row behind it.
	ErrNotPersisted errorkit.Error = "product is not persisted"
	// ErrDuplicateSKU is returned when an insert or update would violate
	// the unique constraint on the sku column.
	ErrDuplicateSKU errorkit.Error = "product sku is already taken"
	// ErrNoConnection is returned when the package is used before
	// Open or OpenInMemory bound a database.
	ErrNoConnection errorkit.Error = "no database bound, call Open or OpenInMemory first"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	sku              TEXT    NOT NULL UNIQUE,
	name             TEXT    NOT NULL,
	unit_price_cents INTEGER NOT NULL,
	currency         TEXT    NOT NULL
)`

// conn is the package level handle every record goes through.
// Bind it once at startup; the package does not synchronise rebinding.
var conn *sql.DB

// Open binds the package to the SQLite database file at the given path
// and bootstraps the schema.
func Open(path string) error {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return fmt.Errorf("activerecord: open %s: %w", path, err)
	}
	return bind(db)
}

// OpenInMemory binds the package to a fresh in-memory SQLite database.
func OpenInMemory() error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("activerecord: open in-memory database: %w", err)
	}
	// every :memory: connection would be its own database,
	// the pool has to stay on a single one
	db.SetMaxOpenConns(1)
	return bind(db)
}

func bind(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("activerecord: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("activerecord: bootstrap schema: %w", err)
	}
	if conn != nil {
		_ = conn.Close()
	}
	conn = db
	return nil
}

// Close releases the bound database. Using the package afterwards
// requires a new Open or OpenInMemory call.
func Close() error {
	if conn == nil {
		return nil
	}
	err := conn.Close()
	conn = nil
	return err
}

func handle() (*sql.DB, error) {
	if conn == nil {
		return nil, ErrNoConnection
	}
	return conn, nil
}

// Product is an active record: entity state and persistence in one type.
type Product struct {
	ID             int64
	SKU            string
	Name           string
	UnitPriceCents int64
	Currency       string
}

const productColumns = `id, sku, name, unit_price_cents, currency`

// Insert stores the product as a new row and assigns its ID.
func (p *Product) Insert(ctx context.Context) error {
	db, err := handle()
	if err != nil {
		return err
	}
	if p.ID != 0 {
		return fmt.Errorf("activerecord: product #%d is already persisted", p.ID)
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO products (sku, name, unit_price_cents, currency) VALUES (?, ?, ?, ?)`,
		p.SKU, p.Name, p.UnitPriceCents, p.Currency)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU.F(`sku %q is already present`, p.SKU)
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update writes the current field values back to the row of the record.
func (p *Product) Update(ctx context.Context) error {
	db, err := handle()
	if err != nil {
		return err
	}
	if p.ID == 0 {
		return ErrNotPersisted.F(`cannot update %q before insert`, p.SKU)
	}
	res, err := db.ExecContext(ctx,
		`UPDATE products SET sku = ?, name = ?, unit_price_cents = ?, currency = ? WHERE id = ?`,
		p.SKU, p.Name, p.UnitPriceCents, p.Currency, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU.F(`sku %q is already present`, p.SKU)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotPersisted.F(`product #%d has no row behind it`, p.ID)
	}
	return nil
}

// Delete removes the row of the record and clears its ID,
// so the record can be inserted again.
func (p *Product) Delete(ctx context.Context) error {
	db, err := handle()
	if err != nil {
		return err
	}
	if p.ID == 0 {
		return ErrNotPersisted.F(`cannot delete %q before insert`, p.SKU)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotPersisted.F(`product #%d has no row behind it`, p.ID)
	}
	p.ID = 0
	return nil
}

// Find loads a product by its row id.
func Find(ctx context.Context, id int64) (*Product, bool, error) {
	db, err := handle()
	if err != nil {
		return nil, false, err
	}
	row := db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return scanProduct(row)
}

// BySKU loads a product by its unique sku.
func BySKU(ctx context.Context, sku string) (*Product, bool, error) {
	db, err := handle()
	if err != nil {
		return nil, false, err
	}
	row := db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE sku = ?`, sku)
	return scanProduct(row)
}

// All returns every product ordered by id.
func All(ctx context.Context) (_ []*Product, rErr error) {
	db, err := handle()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer errorkit.Finish(&rErr, rows.Close)
	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.UnitPriceCents, &p.Currency); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func scanProduct(row *sql.Row) (*Product, bool, error) {
	var p Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.UnitPriceCents, &p.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
