package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `server:
  addr: ":8080"
source:
  dir: "/srv/exports"
schedule:
  seed: 42
  room_count: 5
logging:
  level: "debug"
  format: "console"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.addr", cfg.Server.Addr, ":8080"},
		{"source.dir", cfg.Source.Dir, "/srv/exports"},
		{"source.pattern", cfg.Source.Pattern, "*.csv"},
		{"schedule.seed", cfg.Schedule.Seed, int64(42)},
		{"schedule.room_count", cfg.Schedule.RoomCount, 5},
		{"schedule.placeholder", cfg.Schedule.Placeholder, "---"},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}

	sc := cfg.SchedulerConfiguration()
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, 5, sc.RoomCount)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"source":{"pattern":"course_*.csv"}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "course_*.csv", cfg.Source.Pattern)
	assert.Equal(t, ".", cfg.Source.Dir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TIMETABLE_SOURCE__DIR", "/data")
	t.Setenv("TIMETABLE_SCHEDULE__SEED", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.Source.Dir)
	assert.Equal(t, int64(7), cfg.Schedule.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"rooms.yaml":   "schedule:\n  room_count: -1\n",
		"wide.yaml":    "schedule:\n  room_count: 12\n",
		"format.yaml":  "logging:\n  format: \"xml\"\n",
		"level.yaml":   "logging:\n  level: \"loud\"\n",
		"pattern.yaml": "source:\n  pattern: \"[\"\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(dir, "config.toml"))
	assert.Error(t, err)
}
