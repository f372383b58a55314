package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv(EnvBioGRIDKey, "")
	t.Setenv(EnvBioGRIDKeyAlt, "")
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)
	return dir
}

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	setupTestEnv(t)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if *cfg != (GlobalConfig{}) {
		t.Errorf("LoadGlobalConfig() = %+v, want zero config for missing file", cfg)
	}
}

func TestSaveAndLoadGlobalConfig(t *testing.T) {
	dir := setupTestEnv(t)

	cfg := &GlobalConfig{
		BioGRIDAccessKey: "abc123",
		DefaultOrganism:  "yeast",
		STRINGLimit:      40,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	wantPath := filepath.Join(dir, GlobalConfigDir, GlobalConfigFile)
	if got := GlobalConfigPath(); got != wantPath {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, wantPath)
	}
	info, err := os.Stat(wantPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	ResetGlobalConfigCache()
	loaded, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("LoadGlobalConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestGetBioGRIDAccessKey_Precedence(t *testing.T) {
	setupTestEnv(t)

	cfg := &GlobalConfig{BioGRIDAccessKey: "from-file"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got := GetBioGRIDAccessKey(); got != "from-file" {
		t.Errorf("GetBioGRIDAccessKey() = %q, want config file value", got)
	}

	t.Setenv(EnvBioGRIDKeyAlt, "from-alt-env")
	if got := GetBioGRIDAccessKey(); got != "from-alt-env" {
		t.Errorf("GetBioGRIDAccessKey() = %q, want alt env to beat file", got)
	}

	t.Setenv(EnvBioGRIDKey, "from-env")
	if got := GetBioGRIDAccessKey(); got != "from-env" {
		t.Errorf("GetBioGRIDAccessKey() = %q, want primary env to win", got)
	}
}

func TestGetDefaultOrganism(t *testing.T) {
	setupTestEnv(t)

	if got := GetDefaultOrganism(); got != "human" {
		t.Errorf("GetDefaultOrganism() = %q, want human default", got)
	}

	cfg := &GlobalConfig{DefaultOrganism: "mouse"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := GetDefaultOrganism(); got != "mouse" {
		t.Errorf("GetDefaultOrganism() = %q, want configured value", got)
	}
}

func TestGetHTTPTimeout(t *testing.T) {
	setupTestEnv(t)

	if got := GetHTTPTimeout(); got != 0 {
		t.Errorf("GetHTTPTimeout() = %v, want 0 when unset", got)
	}

	cfg := &GlobalConfig{HTTPTimeoutSecs: 10}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("GetHTTPTimeout() = %v, want 10s", got)
	}
}

func TestDBPath(t *testing.T) {
	dir := setupTestEnv(t)

	want := filepath.Join(dir, DataDirName, DBFile)
	if got := DBPath(); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}
