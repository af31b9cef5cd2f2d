package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"club-site.backend/internal/config"
	"club-site.backend/internal/infrastructure/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLiteDSN = "file:club_site.db?_foreign_keys=on"
)

var (
	openGorm = gorm.Open
	getStdDB = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

// GormConfig is shared by the server, the tools and the tests. Unique
// violations surface as gorm.ErrDuplicatedKey and timestamps are UTC.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		PrepareStmt:    false,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}), nil
	case DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects without pinging; an unreachable database is reported by
// the health check rather than failing startup.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := openGorm(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema including the partial unique
// indexes on executives(role) and sponsors(active).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := getStdDB(db)
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := getStdDB(db)
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
