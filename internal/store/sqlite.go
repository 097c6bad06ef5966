package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/amishk599/jobpulse/internal/model"
	_ "modernc.org/sqlite"
)

// Ensure SQLiteStore implements model.TableSource.
var _ model.TableSource = (*SQLiteStore)(nil)

// SQLiteStore keeps a snapshot of a job table in a SQLite database. Column
// names live in snapshot_columns; each row of postings holds one text cell
// per column, named c0..cN in header order.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// snapshot_columns table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS snapshot_columns (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot_columns table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveTable replaces the stored snapshot with table in a single transaction.
func (s *SQLiteStore) SaveTable(ctx context.Context, table *model.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshot_columns"); err != nil {
		return fmt.Errorf("clearing snapshot columns: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS postings"); err != nil {
		return fmt.Errorf("dropping postings: %w", err)
	}

	cells := make([]string, len(table.Columns))
	marks := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		if _, err := tx.ExecContext(ctx, "INSERT INTO snapshot_columns (position, name) VALUES (?, ?)", i, col); err != nil {
			return fmt.Errorf("saving column %q: %w", col, err)
		}
		cells[i] = cellName(i)
		marks[i] = "?"
	}

	create := "CREATE TABLE postings (row_id INTEGER PRIMARY KEY"
	for _, c := range cells {
		create += ", " + c + " TEXT"
	}
	create += ")"
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating postings table: %w", err)
	}

	if len(cells) > 0 {
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO postings (row_id, %s) VALUES (?, %s)",
			strings.Join(cells, ", "), strings.Join(marks, ", ")))
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		args := make([]any, len(cells)+1)
		for i, p := range table.Rows {
			args[0] = i
			for j, col := range table.Columns {
				args[j+1] = p.Field(col)
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("inserting row %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// LoadTable reads the snapshot back in its original row and column order.
func (s *SQLiteStore) LoadTable(ctx context.Context) (*model.Table, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM snapshot_columns ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("reading snapshot columns: %w", err)
	}
	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		columns = append(columns, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, dataset.ErrEmptyFile
	}

	cells := make([]string, len(columns))
	for i := range columns {
		cells[i] = cellName(i)
	}
	rows, err = s.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM postings ORDER BY row_id", strings.Join(cells, ", ")))
	if err != nil {
		return nil, fmt.Errorf("reading postings: %w", err)
	}
	defer rows.Close()

	table := &model.Table{Columns: columns}
	record := make([]string, len(columns))
	dest := make([]any, len(columns))
	for i := range record {
		dest[i] = &record[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning posting: %w", err)
		}
		table.Rows = append(table.Rows, dataset.NewPosting(columns, record))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading postings: %w", err)
	}
	return table, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func cellName(i int) string {
	return fmt.Sprintf("c%d", i)
}
