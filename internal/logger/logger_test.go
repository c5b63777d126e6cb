package logger

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	mode, level, dir string
	file             bool
}

func (c testConfig) Mode() string  { return c.mode }
func (c testConfig) Level() string { return c.level }
func (c testConfig) Dir() string   { return c.dir }
func (c testConfig) File() bool    { return c.file }

func TestNewInvalidLevelFallsBackToDebug(t *testing.T) {
	log := New(testConfig{mode: "dev", level: "loud"})
	if !log.Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNewWritesFiles(t *testing.T) {
	dir := t.TempDir()
	log := New(testConfig{mode: "dev", level: "info", dir: dir, file: true})
	log.Error("boom")
	_ = log.Sync()

	for _, name := range []string{"fruit_slots.log", "fruit_slots_error.log"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}
