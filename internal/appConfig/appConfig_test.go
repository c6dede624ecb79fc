package appConfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFails(t *testing.T) {
	// A named config file that does not exist is a hard error; a typo'd
	// path must not run with an empty configuration.
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing named config file")
	}
}

func TestLoadDefaultMissingFileIsEmptyConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if *config != (AppConfig{}) {
		t.Errorf("expected zero config, got %+v", config)
	}
}

func TestLoadDefaultReadsHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := "url: https://gitlab.example.com\nworkers: 4\n"
	if err := os.WriteFile(filepath.Join(home, ".labclone.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if config.URL != "https://gitlab.example.com" || config.Workers != 4 {
		t.Errorf("unexpected default config: %+v", config)
	}
}

func TestLoadAndOverlay(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "labclone.yaml")
	content := "directory: ~/repos\nurl: https://gitlab.example.com\ncloneMethod: ssh\nrateLimitPerSecond: 5\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Directory != "~/repos" || config.CloneMethod != "ssh" || config.RateLimitPerSecond != 5 {
		t.Errorf("unexpected file config: %+v", config)
	}

	config.Overlay(AppConfig{CloneMethod: "https", Workers: 8})
	if config.CloneMethod != "https" {
		t.Errorf("expected flag to win, got %s", config.CloneMethod)
	}
	if config.Workers != 8 {
		t.Errorf("expected workers overlay, got %d", config.Workers)
	}
	if config.Directory != "~/repos" {
		t.Errorf("expected file value kept, got %s", config.Directory)
	}
}

func TestResolveTokenEnvFallback(t *testing.T) {
	t.Setenv(TokenEnvVariableName, "from-env")

	config := &AppConfig{}
	if got := config.ResolveToken(); got != "from-env" {
		t.Errorf("expected env fallback, got %q", got)
	}

	config.APIToken = "explicit"
	if got := config.ResolveToken(); got != "explicit" {
		t.Errorf("expected explicit token to win, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := AppConfig{Directory: "/tmp/repos", URL: "https://lab", CloneMethod: "https"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	invalid := []AppConfig{
		{URL: "https://lab", CloneMethod: "https"},
		{Directory: "/tmp/repos", CloneMethod: "https"},
		{Directory: "/tmp/repos", URL: "https://lab", CloneMethod: "svn"},
	}
	for i, config := range invalid {
		if err := config.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, config)
		}
	}
}
