package app

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/fusion-field/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := SetupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	defer log.SetOutput(io.Discard)

	logFile := SetupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestCrashReport(t *testing.T) {
	var buf bytes.Buffer
	CrashReport(&buf, "boom")
	out := buf.String()
	if !strings.Contains(out, "CRASHED: boom") || !strings.Contains(out, "Stack Trace") {
		t.Errorf("crash report = %q", out)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-seed", "99", "-sound", "-no-hud"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(f, fs)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Simulation.Seed != 99 || !cfg.Audio.Enabled || cfg.Display.ShowHUD {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoadConfigUnsetFlagsKeepFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("[simulation]\nseed = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path}); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(f, fs)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Simulation.Seed != 5 {
		t.Errorf("seed = %d, want file value 5", cfg.Simulation.Seed)
	}
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-pixel-ratio", "-2"}); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(f, fs); err == nil {
		t.Error("negative pixel ratio accepted")
	}
}

func TestNewAssembles(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Seed = 1
	cfg.Simulation.NodeCount = 10

	a := New(cfg, 800, 2)
	defer a.Close()

	if got := a.Surface.Width(); got != 800 {
		t.Errorf("surface width = %v", got)
	}
	if got := a.Simulation.State.HiddenCount(); got != 10 {
		t.Errorf("hidden nodes = %d, want 10", got)
	}
	if a.Simulation.Registry() != a.Registry {
		t.Error("simulation publishes to a different registry")
	}

	// Audio disabled: StartAudio is a no-op
	a.StartAudio()
	if a.Sound.Enabled() {
		t.Error("sound enabled with audio off")
	}

	loop := a.NewLoop(nil, nil)
	loop.Step()
	if a.Simulation.State.Ticks != 1 {
		t.Errorf("ticks = %d", a.Simulation.State.Ticks)
	}
	loop.Stop()
}
