package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"club-site.backend/internal/config"
	"club-site.backend/internal/infrastructure/database"
	"club-site.backend/internal/infrastructure/repositories"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{
			Driver: database.DriverSQLite,
			DSN:    fmt.Sprintf("file:seed_%d?mode=memory&cache=shared", time.Now().UnixNano()),
		},
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqliteConfig().Database)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed_IsRepeatable(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		s, err := seed(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, summary{Executives: 6, Sponsors: 3, InterestSubmissions: 4, SponsorInquiries: 2}, s)
	}

	execs := repositories.NewExecutiveRepository(db)
	visible, err := execs.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 6)
	assert.Equal(t, "Sarah Johnson", visible[0].Name)

	sponsors := repositories.NewSponsorRepository(db)
	active, err := sponsors.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
	current, err := sponsors.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Your Company Here", current.Name)

	total, err := repositories.NewSponsorInquiryRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRun(t *testing.T) {
	origLoadDotenv, origLoadCfg, origOpenDB := loadDotenv, loadCfg, openDB
	t.Cleanup(func() { loadDotenv, loadCfg, openDB = origLoadDotenv, origLoadCfg, origOpenDB })

	cfg := sqliteConfig()
	loadDotenv = func(...string) error { return errors.New("no .env") }
	loadCfg = func() *config.Config { return cfg }
	require.NoError(t, run(context.Background()))

	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("refused") }
	assert.EqualError(t, run(context.Background()), "refused")
}
