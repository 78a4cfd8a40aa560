package dbtest

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/jmoiron/sqlx"
)

// MigrateFS executes the SQL files matching pattern from fsys in lexical
// order. Migration files are expected to be numbered, e.g. 000001_init.up.sql.
func MigrateFS(db *sqlx.DB, fsys fs.FS, pattern string) error {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	if len(names) == 0 {
		return fmt.Errorf("no migrations match %q", pattern)
	}

	slices.Sort(names)

	for _, name := range names {
		query, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(query)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", name, err)
		}
	}

	return nil
}
