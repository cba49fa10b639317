package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Data: DataConfig{
			BasePath: "/some/path",
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: 20,
			LoginBurst:     5,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"production", true},
		{"staging", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Data.BasePath = ""

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_RateLimitBounds(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.LoginPerMinute = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.RateLimit.LoginBurst = -1
	assert.Error(t, cfg.Validate())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, AppConfig{Environment: "production"}.IsProduction())
	assert.False(t, AppConfig{Environment: "development"}.IsProduction())
}

func TestDatabasePath(t *testing.T) {
	d := DataConfig{BasePath: "/data/studyhall"}
	assert.Equal(t, filepath.Join("/data/studyhall", "studyhall.db"), d.DatabasePath())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		defPath string
		want    string
	}{
		{
			name:    "empty uses default",
			path:    "",
			defPath: "/default/path",
			want:    "/default/path",
		},
		{
			name: "tilde expands to home",
			path: "~/studyhall",
			want: filepath.Join(home, "studyhall"),
		},
		{
			name: "absolute path unchanged",
			path: "/var/lib/studyhall",
			want: "/var/lib/studyhall",
		},
		{
			name: "trailing slash cleaned",
			path: "/var/lib/studyhall/",
			want: "/var/lib/studyhall",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.path, tt.defPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath_RelativeBecomesAbsolute(t *testing.T) {
	got, err := expandPath("relative/dir", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("STUDYHALL_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "STUDYHALL_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "STUDYHALL_TEST_KEY", "default"))

	t.Setenv("STUDYHALL_TEST_KEY", "")
	assert.Equal(t, "default", getConfigValue("", "STUDYHALL_TEST_KEY", "default"))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("STUDYHALL_TEST_INT", "42")
	assert.Equal(t, 42, getIntConfigValue("", "STUDYHALL_TEST_INT", 7))

	t.Setenv("STUDYHALL_TEST_INT", "not a number")
	assert.Equal(t, 7, getIntConfigValue("", "STUDYHALL_TEST_INT", 7))

	t.Setenv("STUDYHALL_TEST_INT", "")
	assert.Equal(t, 7, getIntConfigValue("", "STUDYHALL_TEST_INT", 7))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("30s", "STUDYHALL_TEST_DUR", "15s")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	d, err = parseDurationValue("", "STUDYHALL_TEST_DUR", "168h")
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, d)

	_, err = parseDurationValue("soon", "STUDYHALL_TEST_DUR", "15s")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"http://localhost:5173"}, splitList("http://localhost:5173"))
	assert.Equal(t,
		[]string{"http://a.example.com", "http://b.example.com"},
		splitList(" http://a.example.com , http://b.example.com ,"))
}
