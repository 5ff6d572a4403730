package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `api:
  environment: "test"
  base_url: "http://localhost:8080"
  port: "8080"
  jwt_signing_key: "local-dev-key"
  allowed_cors_domains:
    - "http://localhost:3000"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "billetterie"
  password: "billetterie"
  db_name: "billetterie"
  ssl_mode: "disable"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "local-dev-key", conf.API.JWTSigningKey)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "billetterie", conf.Postgres.User)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(t, err)
}
