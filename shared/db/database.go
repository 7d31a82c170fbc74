package db

import (
	"database/sql"
)

// Database abstracts the lifecycle of a SQL store connection.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
