package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glassboard/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// BoardBlob is one cached board, serialized as a JSON document.
type BoardBlob struct {
	Key       string `gorm:"primaryKey"`
	Data      string `gorm:"not null"`
	UpdatedAt time.Time
}

// Local is the durable cache backed by a sqlite database.
type Local struct {
	db *gorm.DB
}

// NewLocal wraps an already-open database handle.
func NewLocal(db *gorm.DB) *Local {
	return &Local{db: db}
}

// OpenLocal opens (or creates) the cache database at path and applies any
// pending schema migrations.
func OpenLocal(path string) (*Local, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing cache database: %w", err)
	}
	if err := runMigrations(sqlDB); err != nil {
		return nil, err
	}

	return &Local{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Local) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DefaultCachePath returns the per-user location of the cache database.
func DefaultCachePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "glassboard", "cache.db"), nil
}

// LoadBoard reads the cached board stored under id.
func (l *Local) LoadBoard(id string) (*model.Board, error) {
	var blob BoardBlob
	if err := l.db.Where("key = ?", id).First(&blob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("reading cached board: %w", err)
	}

	var board model.Board
	if err := json.Unmarshal([]byte(blob.Data), &board); err != nil {
		return nil, fmt.Errorf("decoding cached board: %w", err)
	}
	return &board, nil
}

// SaveBoard serializes the board and upserts it under its own ID.
func (l *Local) SaveBoard(board *model.Board) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}

	blob := BoardBlob{Key: board.ID, Data: string(payload)}
	if err := l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error; err != nil {
		return fmt.Errorf("caching board: %w", err)
	}
	return nil
}

// DeleteBoard drops the cached copy of the board, if any.
func (l *Local) DeleteBoard(id string) error {
	result := l.db.Delete(&BoardBlob{}, "key = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting cached board: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("preparing migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("initializing migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
