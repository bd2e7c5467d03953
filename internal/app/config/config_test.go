package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.toml"), []byte(body), 0o600))
	return dir
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
ServicePort = 9090

[Database]
Driver = "sqlite"
Path = "board.db"

[JWT]
ExpiresIn = "30m"
`)
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("REDIS_HOST", "cache.local")

	cfg, err := Load("test", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "board.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ExpiresIn)
	assert.Equal(t, "0123456789abcdef0123", cfg.JWT.Secret)
	assert.Equal(t, "cache.local", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-that-is-long-enough")

	cfg, err := Load("missing", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "card-images", cfg.MinIO.Bucket)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("missing", t.TempDir())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Driver: DriverMySQL},
			JWT:      JWTConfig{Secret: "0123456789abcdef", ExpiresIn: time.Hour},
		}
	}

	c := valid()
	assert.NoError(t, c.Validate())

	c = valid()
	c.JWT.Secret = "short"
	assert.ErrorIs(t, c.Validate(), ErrShortSecret)

	c = valid()
	c.JWT.ExpiresIn = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Database.Driver = "oracle"
	assert.Error(t, c.Validate())
}

func TestDatabasePortFollowsDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")

	tests := []struct {
		name string
		body string
		port int
	}{
		{"postgres default", "[Database]\nDriver = \"postgres\"\n", 5432},
		{"mysql default", "[Database]\nDriver = \"mysql\"\n", 3306},
		{"explicit port wins", "[Database]\nDriver = \"mysql\"\nPort = 3307\n", 3307},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("test", writeConfig(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.port, cfg.Database.Port)
		})
	}
}

func TestLoadDatabaseDoesNotNeedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	dir := writeConfig(t, "[Database]\nDriver = \"sqlite\"\nPath = \"board.db\"\n")

	cfg, err := LoadDatabase("test", dir)
	require.NoError(t, err)
	assert.Equal(t, "board.db", cfg.Database.Path)

	_, err = Load("test", dir)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = LoadDatabase("test", writeConfig(t, "[Database]\nDriver = \"oracle\"\n"))
	assert.Error(t, err)
}

func TestTrustedProxies(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")

	cfg, err := Load("missing", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)

	cfg, err = Load("test", writeConfig(t, `TrustedProxies = ["10.0.0.0/8", "127.0.0.1"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}
