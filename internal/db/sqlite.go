package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mysterydesk/gumshoe/internal/errors"

	_ "embed"
	_ "github.com/mattn/go-sqlite3" // Enable sqlite3 driver
)

//go:embed init.sql
var initialiseSchemaScript string

// Database holds separate connection pools for read/write and read-only
// access, the recommended arrangement for sqlite under WAL.
type Database struct {
	ReadWrite *sqlx.DB
	ReadOnly  *sqlx.DB
}

// NewDatabase opens the database at url, applies the schema, and returns the
// connection pools. Use ":memory:" for an in-memory database.
func NewDatabase(url string) (*Database, error) {
	var (
		err       error
		readWrite *sqlx.DB
		readOnly  *sqlx.DB
	)

	// In-memory databases need shared cache mode so that both pools see the
	// same data.
	isInMemory := url == ":memory:"
	cacheConfig := "&cache=private"
	if isInMemory {
		cacheConfig = "&cache=shared"
	}
	commonConfig := "_journal_mode=wal&_busy_timeout=5000&_synchronous=normal&_foreign_keys=on"

	readConfig := fmt.Sprintf("file:%s?mode=ro&_txlock=deferred&%s%s", url, commonConfig, cacheConfig)
	readWriteConfig := fmt.Sprintf("file:%s?mode=rwc&_txlock=immediate&%s%s", url, commonConfig, cacheConfig)

	if readWrite, err = sqlx.Open("sqlite3", readWriteConfig); err != nil {
		return nil, errors.Wrap(err, "open read-write database")
	}

	readWrite.SetMaxOpenConns(1)
	readWrite.SetMaxIdleConns(1)
	readWrite.SetConnMaxLifetime(time.Hour)
	readWrite.SetConnMaxIdleTime(time.Hour)

	if _, err = readWrite.Exec(initialiseSchemaScript); err != nil {
		return nil, errors.Wrap(err, "initialize schema")
	}

	if readOnly, err = sqlx.Open("sqlite3", readConfig); err != nil {
		return nil, errors.Wrap(err, "open read database")
	}

	maxReadConns := 10
	readOnly.SetMaxOpenConns(maxReadConns)
	readOnly.SetMaxIdleConns(maxReadConns)
	readOnly.SetConnMaxLifetime(time.Hour)
	readOnly.SetConnMaxIdleTime(time.Hour)

	return &Database{
		ReadWrite: readWrite,
		ReadOnly:  readOnly,
	}, nil
}

// Close closes both connection pools.
func (d *Database) Close() error {
	return errors.Join(d.ReadWrite.Close(), d.ReadOnly.Close())
}
