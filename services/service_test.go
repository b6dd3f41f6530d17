package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:       "test",
		JWTSecret: "test-secret",
	}
}

// newTestGormDB opens an isolated in-memory database with migrations run.
func newTestGormDB(t *testing.T) *db.GormDB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	return &db.GormDB{DB: gormDB}
}
