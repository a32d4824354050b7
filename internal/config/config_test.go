package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Output.DPI != 300 || cfg.Output.Dir != "analysis" {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
}

func TestParseHCL(t *testing.T) {
	src := `
strict = true

data {
  resources = "game/resources.json"
}

output {
  dir      = "charts"
  dpi      = 120
  workbook = true

  s3 {
    bucket = "economy-charts"
    region = "eu-west-1"
  }
}

charts {
  timeline = true
}

logging {
  level = "debug"
}
`
	cfg, err := Parse("economy.hcl", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !cfg.Strict || !cfg.Charts.Timeline || !cfg.Output.Workbook {
		t.Errorf("booleans not applied: %+v", cfg)
	}
	if cfg.Data.Resources != "game/resources.json" {
		t.Errorf("resources = %s", cfg.Data.Resources)
	}
	if cfg.Data.BiomeSeasons != Default().Data.BiomeSeasons {
		t.Errorf("unset field lost its default: %s", cfg.Data.BiomeSeasons)
	}
	if cfg.Output.Dir != "charts" || cfg.Output.DPI != 120 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if !cfg.Output.Manifest {
		t.Error("manifest default lost")
	}
	if !cfg.Output.S3.Enabled() || cfg.Output.S3.Region != "eu-west-1" {
		t.Errorf("s3 = %+v", cfg.Output.S3)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestParseJSON(t *testing.T) {
	src := `{"output": {"dpi": 72, "format": "markdown"}, "logging": {"output": "discard"}}`
	cfg, err := Parse("economy.json", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Output.DPI != 72 || cfg.Output.Format != "markdown" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Logging.Output != "discard" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestParseRejectsUnknownAttribute(t *testing.T) {
	if _, err := Parse("economy.hcl", []byte(`colour = "red"`)); err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir == "" {
		t.Error("expected defaults")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.hcl")
	if err := os.WriteFile(path, []byte(`output { dpi = 100 }`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ECONOMY_DPI", "200")
	t.Setenv("ECONOMY_OUTPUT_DIR", "out")
	t.Setenv("ECONOMY_TIMELINE", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.DPI != 200 || cfg.Output.Dir != "out" || !cfg.Charts.Timeline {
		t.Errorf("env overrides not applied: %+v %+v", cfg.Output, cfg.Charts)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero dpi":        func(c *Config) { c.Output.DPI = 0 },
		"no resources":    func(c *Config) { c.Data.Resources = "" },
		"bad format":      func(c *Config) { c.Output.Format = "html" },
		"s3 no region":    func(c *Config) { c.Output.S3.Bucket = "b" },
		"no output place": func(c *Config) { c.Output.Dir = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "economy.json")
	cfg := Default()
	cfg.Output.DPI = 144
	cfg.Charts.Timeline = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.DPI != 144 || !loaded.Charts.Timeline {
		t.Errorf("saved config not reloaded: %+v", loaded)
	}
}
