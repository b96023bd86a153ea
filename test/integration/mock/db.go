// Package mock provides test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory database used by the integration suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once) the shared in-memory database and migrates the given
// models. The models map is keyed by table name so steps can assert on
// tables generically.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive for
	// the whole suite.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, m := range models {
		modelList = append(modelList, m)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		DbConn: conn,
		models: models,
	}
}

// ClearDB removes every row from every registered table.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
