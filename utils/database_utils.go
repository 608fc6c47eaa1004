// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"
	"testing"

	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteFile is the local fallback database used when DATABASE_URL is
// not configured. Foreign keys must be switched on explicitly or the
// cascade constraints silently stop working.
const SqliteFile = "forum.sqlite"

// GetDBConnection connects to the database selected by the
// environment: postgres when DATABASE_URL is set, the local sqlite
// file otherwise.
func GetDBConnection() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return getPostgresDB(dsn)
	}
	return getSqliteDB(SqliteFile)
}

func getPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "fail to connect to postgres")
	}
	return db, nil
}

func getSqliteDB(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "fail to open sqlite database")
	}
	return db, nil
}

// DatabaseSetupAndMigration creates or upgrades the four tables. Order
// matters: accounts first so topic/comment foreign keys can bind.
func DatabaseSetupAndMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Topic{},
		&model.Comment{},
		&model.NewsCache{},
	)
}

const (
	testDBPrefix         = "testonlydb_"
	testDBNameCharLength = 8
)

func randomTestDBName() string {
	return testDBPrefix + RandomAlphabetString(testDBNameCharLength)
}

// CreateTempDB builds a fully migrated in-memory sqlite database for a
// test case, torn down with the test. Each call gets a uniquely named
// shared-cache database so cases never share rows, pinned to a single
// connection so the database (and its foreign_keys pragma) survives
// pool churn. Sqlite is also the production fallback engine, so the
// cascade constraints exercised here are the real ones.
func CreateTempDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", randomTestDBName())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("cannot open in-memory DB: %v", err)
	}
	conn, err := db.DB()
	if err != nil {
		t.Fatalf("cannot get SQL DB: %v", err)
	}
	conn.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys = ON")
	if err := DatabaseSetupAndMigration(db); err != nil {
		t.Fatalf("cannot migrate in-memory DB: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return db
}
