package config

import (
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ECONOMY_"

// fileConfig is the on-disk shape. Every field is optional so that a file
// only overrides what it names; the rest keeps its default.
type fileConfig struct {
	Version *string       `hcl:"version,optional"`
	Strict  *bool         `hcl:"strict,optional"`
	Data    *dataBlock    `hcl:"data,block"`
	Output  *outputBlock  `hcl:"output,block"`
	Charts  *chartsBlock  `hcl:"charts,block"`
	Logging *loggingBlock `hcl:"logging,block"`
}

type dataBlock struct {
	Resources    *string `hcl:"resources,optional"`
	BiomeSeasons *string `hcl:"biome_seasons,optional"`
}

type outputBlock struct {
	Dir      *string  `hcl:"dir,optional"`
	DPI      *int     `hcl:"dpi,optional"`
	Format   *string  `hcl:"format,optional"`
	Workbook *bool    `hcl:"workbook,optional"`
	Manifest *bool    `hcl:"manifest,optional"`
	S3       *s3Block `hcl:"s3,block"`
}

type s3Block struct {
	Bucket         *string `hcl:"bucket,optional"`
	Prefix         *string `hcl:"prefix,optional"`
	Region         *string `hcl:"region,optional"`
	Endpoint       *string `hcl:"endpoint,optional"`
	AccessKey      *string `hcl:"access_key,optional"`
	SecretKey      *string `hcl:"secret_key,optional"`
	ForcePathStyle *bool   `hcl:"force_path_style,optional"`
}

type chartsBlock struct {
	Timeline *bool `hcl:"timeline,optional"`
}

type loggingBlock struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// Load reads a configuration file, merges it on top of the defaults and
// applies ECONOMY_* environment overrides (a .env file in the working
// directory is honored). The file may be native HCL (.hcl) or JSON
// (.json). A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var fc fileConfig
			if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
				return nil, err
			}
			fc.apply(cfg)
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Parse decodes configuration source on top of the defaults. The filename
// extension selects the syntax.
func Parse(filename string, src []byte) (*Config, error) {
	cfg := Default()
	var fc fileConfig
	if err := hclsimple.Decode(filename, src, nil, &fc); err != nil {
		return nil, err
	}
	fc.apply(cfg)
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setPtr(&cfg.Version, fc.Version)
	setPtr(&cfg.Strict, fc.Strict)

	if d := fc.Data; d != nil {
		setPtr(&cfg.Data.Resources, d.Resources)
		setPtr(&cfg.Data.BiomeSeasons, d.BiomeSeasons)
	}

	if o := fc.Output; o != nil {
		setPtr(&cfg.Output.Dir, o.Dir)
		setPtr(&cfg.Output.DPI, o.DPI)
		setPtr(&cfg.Output.Format, o.Format)
		setPtr(&cfg.Output.Workbook, o.Workbook)
		setPtr(&cfg.Output.Manifest, o.Manifest)
		if s := o.S3; s != nil {
			setPtr(&cfg.Output.S3.Bucket, s.Bucket)
			setPtr(&cfg.Output.S3.Prefix, s.Prefix)
			setPtr(&cfg.Output.S3.Region, s.Region)
			setPtr(&cfg.Output.S3.Endpoint, s.Endpoint)
			setPtr(&cfg.Output.S3.AccessKey, s.AccessKey)
			setPtr(&cfg.Output.S3.SecretKey, s.SecretKey)
			setPtr(&cfg.Output.S3.ForcePathStyle, s.ForcePathStyle)
		}
	}

	if c := fc.Charts; c != nil {
		setPtr(&cfg.Charts.Timeline, c.Timeline)
	}

	if l := fc.Logging; l != nil {
		setPtr(&cfg.Logging.Level, l.Level)
		setPtr(&cfg.Logging.Format, l.Format)
		setPtr(&cfg.Logging.Output, l.Output)
		setPtr(&cfg.Logging.Development, l.Development)
	}
}

func setPtr[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyEnvOverrides reads ECONOMY_* environment variables and overwrites
// the corresponding fields when a variable is set.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Data.Resources, EnvPrefix+"RESOURCES")
	setStr(&cfg.Data.BiomeSeasons, EnvPrefix+"BIOME_SEASONS")

	setStr(&cfg.Output.Dir, EnvPrefix+"OUTPUT_DIR")
	setInt(&cfg.Output.DPI, EnvPrefix+"DPI")
	setStr(&cfg.Output.Format, EnvPrefix+"FORMAT")
	setBool(&cfg.Output.Workbook, EnvPrefix+"WORKBOOK")
	setBool(&cfg.Charts.Timeline, EnvPrefix+"TIMELINE")
	setBool(&cfg.Strict, EnvPrefix+"STRICT")

	setStr(&cfg.Output.S3.Bucket, EnvPrefix+"S3_BUCKET")
	setStr(&cfg.Output.S3.Prefix, EnvPrefix+"S3_PREFIX")
	setStr(&cfg.Output.S3.Region, EnvPrefix+"S3_REGION")
	setStr(&cfg.Output.S3.Endpoint, EnvPrefix+"S3_ENDPOINT")
	setStr(&cfg.Output.S3.AccessKey, EnvPrefix+"S3_ACCESS_KEY")
	setStr(&cfg.Output.S3.SecretKey, EnvPrefix+"S3_SECRET_KEY")
	setBool(&cfg.Output.S3.ForcePathStyle, EnvPrefix+"S3_FORCE_PATH_STYLE")

	setStr(&cfg.Logging.Level, EnvPrefix+"LOG_LEVEL")
	setStr(&cfg.Logging.Format, EnvPrefix+"LOG_FORMAT")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
