package database

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestDSN(t *testing.T) {
	is := is.New(t)

	cfg := ConnectorConfig{
		Host:     "db",
		Port:     "5432",
		Username: "trace",
		DbName:   "iptrace",
		Password: "secret",
		SslMode:  "disable",
	}

	is.Equal(cfg.DSN(), "host=db port=5432 user=trace dbname=iptrace sslmode=disable password=secret")
}

func TestThatEmptyHostUsesSQLite(t *testing.T) {
	is := is.New(t)

	db, _, err := NewConnector(zerolog.Nop(), ConnectorConfig{})()
	is.NoErr(err)
	is.Equal(db.Dialector.Name(), "sqlite")
}
