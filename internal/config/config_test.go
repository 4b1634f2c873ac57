package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidRedisConfig(t *testing.T) {
	cfg := &Config{
		StoreBackend: StoreBackendRedis,
		Redis: &RedisConfig{
			Addr: "localhost:6379",
		},
		ScheduleSheetID: "sheet123",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_ValidFileConfig(t *testing.T) {
	cfg := &Config{
		StoreBackend: StoreBackendFile,
		File: &FileConfig{
			Path: "data/snapshot.json",
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingBackend(t *testing.T) {
	cfg := &Config{}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{StoreBackend: "postgres"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_RedisBackendWithoutBlock(t *testing.T) {
	cfg := &Config{StoreBackend: StoreBackendRedis}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no redis block")
}

func TestValidate_FileBackendWithoutBlock(t *testing.T) {
	cfg := &Config{StoreBackend: StoreBackendFile}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no file block")
}

func TestValidate_RedisBlockMissingAddr(t *testing.T) {
	cfg := &Config{
		StoreBackend: StoreBackendRedis,
		Redis:        &RedisConfig{},
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
storeBackend: "redis"
redis:
  addr: "localhost:6379"
  password: "secret"
  db: 2
scheduleSheetID: "sheet123"
advisory:
  model: "gemini-2.5-flash"
  apiKeyEnv: "GEMINI_API_KEY"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "sheet123", cfg.ScheduleSheetID)
	assert.Equal(t, "gemini-2.5-flash", cfg.Advisory.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Advisory.APIKeyEnv)
}

func TestLoadFromPath_FileBackend(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
storeBackend: "file"
file:
  path: "data/snapshot.json"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	require.NotNil(t, cfg.File)
	assert.Equal(t, "data/snapshot.json", cfg.File.Path)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte("storeBackend: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/transport_config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
