package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
  write_timeout: 15
  idle_timeout: 120
  frontend_origin: "https://bridge.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
origin:
  lcd_url: "https://lcd.example.com"
  admin_wallet: "juno1admin"
  http_timeout: "10s"
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
worker:
  pool_size: 4
  queue_size: 40
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, "https://bridge.example.com", cfg.Server.FrontendOrigin)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "https://lcd.example.com", cfg.Origin.LCDURL)
				assert.Equal(t, "juno1admin", cfg.Origin.AdminWallet)
				assert.Equal(t, 10*time.Second, cfg.Origin.HTTPTimeout)
				assert.Equal(t, "https://gateway.example.com", cfg.Rollup.GatewayURL)
				assert.Equal(t, "0xminter", cfg.Rollup.AccountAddress)
				assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 40, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
origin:
  lcd_url: "https://lcd.example.com"
  admin_wallet: "juno1admin"
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 16, cfg.Database.MaxOpenConns)
				assert.Equal(t, 4, cfg.Database.MaxIdleConns)
				assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30, cfg.Server.ReadTimeout)
				assert.Equal(t, 60, cfg.Server.IdleTimeout)
				assert.Equal(t, 30*time.Second, cfg.Origin.HTTPTimeout)
				assert.Equal(t, 30*time.Second, cfg.Rollup.HTTPTimeout)
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 100, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
origin:
  lcd_url: "https://lcd.example.com"
  admin_wallet: "juno1admin"
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
`,
			expectError: true,
		},
		{
			name: "missing origin admin wallet",
			configFile: `
database:
  host: localhost
  dbname: testdb
origin:
  lcd_url: "https://lcd.example.com"
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
`,
			expectError: true,
		},
		{
			name: "missing rollup gateway",
			configFile: `
database:
  host: localhost
  dbname: testdb
origin:
  lcd_url: "https://lcd.example.com"
  admin_wallet: "juno1admin"
rollup:
  account_address: "0xminter"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadConsumerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *ConsumerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
  http_timeout: "45s"
queue:
  batch_size: 25
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ConsumerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "https://gateway.example.com", cfg.Rollup.GatewayURL)
				assert.Equal(t, 45*time.Second, cfg.Rollup.HTTPTimeout)
				assert.Equal(t, 25, cfg.Queue.BatchSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ConsumerConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 30*time.Second, cfg.Rollup.HTTPTimeout)
				assert.Equal(t, 50, cfg.Queue.BatchSize)
			},
		},
		{
			name: "missing rollup account address",
			configFile: `
database:
  host: localhost
  dbname: testdb
rollup:
  gateway_url: "https://gateway.example.com"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadConsumerConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses NFT_BRIDGE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `NFT_BRIDGE_DEBUG=true
NFT_BRIDGE_DATABASE_HOST=env-host
NFT_BRIDGE_DATABASE_PORT=3306
NFT_BRIDGE_DATABASE_USER=env-user
NFT_BRIDGE_DATABASE_PASSWORD=env-pass
NFT_BRIDGE_DATABASE_DBNAME=env-db
NFT_BRIDGE_DATABASE_SSLMODE=require
NFT_BRIDGE_ORIGIN_ADMIN_WALLET=juno1envadmin
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
origin:
  lcd_url: "https://lcd.example.com"
  admin_wallet: "juno1fileadmin"
rollup:
  gateway_url: "https://gateway.example.com"
  account_address: "0xminter"
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// The .env file is loaded via godotenv.Overload, which sets actual
	// environment variables, and viper's AutomaticEnv picks them up.
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "juno1envadmin", cfg.Origin.AdminWallet)
}
