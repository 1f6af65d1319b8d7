package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the shared in-memory database, creating the schema for models
// on first use. models is keyed by table name.
func NewDb(name string, models map[string]any) *Db {
	once.Do(
		func() {
			db = open(name, models)
		},
	)

	return db
}

func open(name string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		panic(err)
	}

	// One connection keeps the in-memory database alive and serializes writers.
	dbSQL.SetMaxOpenConns(1)
	dbSQL.SetMaxIdleConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for table, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table %s for model %T was not created", table, model)
		}
	}
	return nil
}

// ClearDB removes every row, sequence counters included, so identifiers
// restart at 1 in the next scenario.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for table, model := range d.models {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
			if err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
