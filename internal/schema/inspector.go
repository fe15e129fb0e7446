package schema

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/tvandenberg/fleetlens/internal/catalog"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Inspector answers table-schema queries against the app's development
// database, falling back to raw migration text when the database cannot
// answer.
type Inspector struct {
	appPath string
}

// NewInspector builds an inspector rooted at the Laravel app path.
func NewInspector(appPath string) *Inspector {
	return &Inspector{appPath: appPath}
}

// TableSchema introspects one table. Primary source is the SQLite dev
// database; when that fails for any reason (missing database, unmigrated
// table, driver error) the newest migration file mentioning the table is
// returned verbatim as a degraded, non-error result. Only when both paths
// fail does the call fail.
func (i *Inspector) TableSchema(table string) (*types.TableSchema, error) {
	if !identPattern.MatchString(table) {
		return nil, types.Usagef("invalid table name %q", table)
	}

	cols, dbErr := i.fromDatabase(table)
	if dbErr == nil {
		return &types.TableSchema{Table: table, Columns: cols, Source: "database"}, nil
	}

	file, text, migErr := i.fromMigration(table)
	if migErr != nil {
		return nil, types.Collaboratorf(fmt.Errorf("database: %v; migrations: %v", dbErr, migErr), "unable to resolve schema for table %s", table)
	}

	return &types.TableSchema{
		Table:         table,
		Source:        "migration",
		MigrationFile: file,
		MigrationText: text,
	}, nil
}

func (i *Inspector) fromDatabase(table string) ([]types.ColumnInfo, error) {
	dbPath := filepath.Join(i.appPath, "database", "database.sqlite")
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("table %s does not exist", table)
		}
		return nil, err
	}

	// Table name is validated against identPattern; PRAGMA does not take
	// placeholders.
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []types.ColumnInfo
	for rows.Next() {
		var (
			cid     int
			colName string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		col := types.ColumnInfo{
			Name:     colName,
			Type:     colType,
			Nullable: notNull == 0,
			Primary:  pk > 0,
		}
		if dflt.Valid {
			col.Default = dflt.String
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s has no columns", table)
	}
	return cols, nil
}

// fromMigration finds the newest migration whose filename mentions the
// table. Migration names lead with a timestamp, so the lexically last
// match is the newest.
func (i *Inspector) fromMigration(table string) (string, string, error) {
	matches, err := catalog.FindFiles(i.appPath, "database/migrations/*"+table+"*.php", nil)
	if err != nil {
		return "", "", err
	}
	if len(matches) == 0 {
		return "", "", fmt.Errorf("no migration file matches table %s", table)
	}

	newest := matches[len(matches)-1]
	text, err := os.ReadFile(newest)
	if err != nil {
		return "", "", err
	}

	rel, relErr := filepath.Rel(i.appPath, newest)
	if relErr != nil {
		rel = newest
	}
	return filepath.ToSlash(rel), string(text), nil
}
