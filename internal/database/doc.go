// Package database owns the postgres connection for the job board.
//
// Open returns a *DB that main constructs once, passes to the repositories
// and closes on shutdown. There are no package-level handles.
//
//	db, err := database.Open(ctx, database.Config{DSN: dsn}, logger)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
// # Error Types
//
// Repositories translate driver errors with Translate:
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation (SQLSTATE 23505)
//   - ErrConnection: Database connection failed
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrDuplicate) {
//	    // pick another slug
//	}
//
// # Logging
//
// gorm's logger is replaced by Logger, which reports failed and slow
// queries through log/slog.
package database
