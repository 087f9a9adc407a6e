package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "DB_DRIVER", "DATABASE_URL",
	"DB_PORT", "DB_PATH", "ADMIN_USERNAME", "ADMIN_PASSWORD", "CORS_ALLOWED_ORIGINS", "SEED_DEMO_DATA",
	"APP_ENV",
}

func cleanupTestEnv() {
	for _, v := range configVars {
		os.Unsetenv(v)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	os.Setenv("TYPED_INT", "42")
	os.Setenv("TYPED_BOOL", "true")
	os.Setenv("TYPED_BAD_INT", "forty-two")
	defer func() {
		os.Unsetenv("TYPED_INT")
		os.Unsetenv("TYPED_BOOL")
		os.Unsetenv("TYPED_BAD_INT")
	}()

	assert.Equal(t, 42, GetEnvAsType("TYPED_INT", 0))
	assert.True(t, GetEnvAsType("TYPED_BOOL", false))
	assert.Equal(t, 7, GetEnvAsType("TYPED_BAD_INT", 7))
	assert.Equal(t, "fallback", GetEnvAsType("TYPED_MISSING", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")
		os.Setenv("SEED_DEMO_DATA", "true")
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres", config.DBDriver)
		assert.Equal(t, "5432", config.DBPort)
		assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, config.CORSAllowedOrigins)
		assert.True(t, config.SeedDemoData)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with malformed database url", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DATABASE_URL", "not a url")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "sqlite", config.DBDriver)
		assert.Equal(t, "pizza.sqlite", config.DBPath)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
		assert.False(t, config.SeedDemoData)
		assert.Empty(t, config.AdminUsername)
		assert.Empty(t, config.AdminPassword)
	})
}

func TestLoadConfigProduction(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "no bootstrap admin by default",
			env:  map[string]string{"JWT_SECRET": "prod-jwt-secret"},
		},
		{
			name:    "default jwt secret is rejected",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "well-known admin password is rejected",
			env:     map[string]string{"JWT_SECRET": "prod-jwt-secret", "ADMIN_USERNAME": "root", "ADMIN_PASSWORD": "admin"},
			wantErr: true,
		},
		{
			name:    "password equal to username is rejected",
			env:     map[string]string{"JWT_SECRET": "prod-jwt-secret", "ADMIN_USERNAME": "boss", "ADMIN_PASSWORD": "boss"},
			wantErr: true,
		},
		{
			name: "explicit admin credentials are kept",
			env:  map[string]string{"JWT_SECRET": "prod-jwt-secret", "ADMIN_USERNAME": "boss", "ADMIN_PASSWORD": "s3cr3t-Pass"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestEnv()
			defer cleanupTestEnv()
			t.Setenv("APP_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config, err := LoadConfig()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, config)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, "admin", config.AdminPassword)
			assert.Equal(t, tt.env["ADMIN_PASSWORD"], config.AdminPassword)
		})
	}
}

func TestConfigStringRedactsSecrets(t *testing.T) {
	config := &Config{
		DatabaseURL:   "postgres://pizza:hunter2@db:5432/pizza",
		DBPassword:    "hunter2",
		JWTSecret:     "jwt-secret-value",
		AdminPassword: "admin-secret-value",
	}

	out := config.String()

	assert.False(t, strings.Contains(out, "hunter2"))
	assert.False(t, strings.Contains(out, "jwt-secret-value"))
	assert.False(t, strings.Contains(out, "admin-secret-value"))
	assert.Contains(t, out, "@db:5432/pizza")
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
