package database

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/AnshRaj112/guildhall-backend/internal/config"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	c := qt.New(t)

	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		SQLitePath:     filepath.Join(c.TempDir(), "nested", "guildhall.db"),
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 2,
	}
	db, err := Open(cfg)
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { Close(db) })

	for _, table := range []string{"users", "groups", "user_groups", "profiles"} {
		c.Assert(db.Migrator().HasTable(table), qt.IsTrue, qt.Commentf("table %s", table))
	}
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	c := qt.New(t)

	db, err := Open(&config.Config{
		DBDriver:       config.DriverSQLite,
		SQLitePath:     filepath.Join(c.TempDir(), "fk.db"),
		DBMaxOpenConns: 1,
	})
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { Close(db) })

	err = db.Create(&models.UserGroup{UserID: 42, GroupID: 7}).Error
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestOpenUnknownDriver(t *testing.T) {
	c := qt.New(t)

	_, err := Open(&config.Config{DBDriver: "mysql"})
	c.Assert(err, qt.ErrorMatches, `unsupported DB_DRIVER "mysql"`)
}
