package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
	configLoaded = false
	logLevel = LevelInfo
}

// TestCategoriesLog tests that categories create log files when debug_mode is true.
func TestCategoriesLog(t *testing.T) {
	tempDir := t.TempDir()

	configDir := filepath.Join(tempDir, ".dynamichat")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `logging:
  level: debug
  debug_mode: true
  categories:
    boot: true
    nlp: true
    gateway: true
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	resetState()
	defer resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	NLP("classifying %q", "hello")
	Gateway("sending prompt")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(tempDir, ".dynamichat", "logs"))
	if err != nil {
		t.Fatalf("logs dir not created: %v", err)
	}

	found := map[string]bool{}
	for _, e := range entries {
		for _, cat := range []string{"boot", "nlp", "gateway"} {
			if strings.Contains(e.Name(), cat) {
				found[cat] = true
			}
		}
	}
	for _, cat := range []string{"boot", "nlp", "gateway"} {
		if !found[cat] {
			t.Errorf("expected log file for category %s", cat)
		}
	}
}

// TestProductionModeNoLogs tests that no logs are written without a config.
func TestProductionModeNoLogs(t *testing.T) {
	tempDir := t.TempDir()

	resetState()
	defer resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsDebugMode() {
		t.Error("expected debug mode disabled without config")
	}

	Sentiment("should be a no-op")

	if _, err := os.Stat(filepath.Join(tempDir, ".dynamichat", "logs")); !os.IsNotExist(err) {
		t.Error("logs directory should not exist in production mode")
	}
}

// TestCategoryFiltering tests that disabled categories do not log.
func TestCategoryFiltering(t *testing.T) {
	tempDir := t.TempDir()

	configDir := filepath.Join(tempDir, ".dynamichat")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configContent := `logging:
  level: debug
  debug_mode: true
  categories:
    memory: false
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	resetState()
	defer resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryMemory) {
		t.Error("memory category should be disabled")
	}
	if !IsCategoryEnabled(CategoryGateway) {
		t.Error("unlisted categories should default to enabled")
	}
}
