package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"destinos/internal/errors"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded schema files in name order inside one transaction.
// Every statement is idempotent, so running it on an existing schema is a no-op.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			content, err := migrationFiles.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "failed to read migration %s", name)
			}
			for _, stmt := range splitStatements(string(content)) {
				if err := tx.Exec(stmt).Error; err != nil {
					return errors.Wrapf(err, "migration %s failed", name)
				}
			}
			logger.Info("Migration applied", slog.String("file", name))
		}

		return nil
	})
}

// splitStatements breaks a schema file on semicolons that end a line.
func splitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}

	return statements
}
