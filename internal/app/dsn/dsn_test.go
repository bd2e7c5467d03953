package dsn

import (
	"testing"

	"kanban/internal/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	pg, err := FromConfig(config.DatabaseConfig{
		Driver: config.DriverPostgres, Host: "db", Port: 5432,
		User: "postgres", Password: "pw", Name: "kanban", SSLMode: "disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "host=db user=postgres password=pw dbname=kanban port=5432 sslmode=disable", pg)

	my, err := FromConfig(config.DatabaseConfig{
		Driver: config.DriverMySQL, Host: "localhost", Port: 3306,
		User: "root", Password: "pw", Name: "kanban",
	})
	require.NoError(t, err)
	assert.Contains(t, my, "root:pw@tcp(localhost:3306)/kanban?")
	assert.Contains(t, my, "parseTime=true")

	lite, err := FromConfig(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "board.db"})
	require.NoError(t, err)
	assert.Equal(t, "board.db", lite)

	_, err = FromConfig(config.DatabaseConfig{Driver: config.DriverSQLite})
	assert.Error(t, err)

	_, err = FromConfig(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
