package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable, e.g. AIDSTATS_YEARS_FIRST.
const EnvPrefix = "AIDSTATS"

// Config represents the complete application configuration
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs" envconfig:"INPUTS"`
	Years    YearsConfig    `yaml:"years" envconfig:"YEARS"`
	IDColumn string         `yaml:"id_column" envconfig:"ID_COLUMN" validate:"required"`
	Regions  RegionsConfig  `yaml:"regions" envconfig:"REGIONS"`
	Impute   ImputeConfig   `yaml:"impute" envconfig:"IMPUTE"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputsConfig points at the two source tables.
type InputsConfig struct {
	Aid    string `yaml:"aid" envconfig:"AID" validate:"required"`
	Income string `yaml:"income" envconfig:"INCOME" validate:"required"`
}

// YearsConfig is the inclusive year range kept from both tables.
type YearsConfig struct {
	First int `yaml:"first" envconfig:"FIRST" validate:"min=1800,max=2100"`
	Last  int `yaml:"last" envconfig:"LAST" validate:"min=1800,max=2100,gtefield=First"`
}

// RegionsConfig selects the reference country set. An empty File uses the
// compiled-in African list.
type RegionsConfig struct {
	File string `yaml:"file" envconfig:"FILE"`
	Name string `yaml:"name" envconfig:"NAME" validate:"required"`
}

// ImputeConfig decides what happens to countries without any data.
type ImputeConfig struct {
	Policy string `yaml:"policy" envconfig:"POLICY" validate:"oneof=error drop global"`
}

// AnalysisConfig controls ranking and the countries of interest.
type AnalysisConfig struct {
	TopN  int      `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
	Focus []string `yaml:"focus" envconfig:"FOCUS"`
}

// OutputConfig contains output locations
type OutputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Snapshot string `yaml:"snapshot" envconfig:"SNAPSHOT"`
	Workbook string `yaml:"workbook" envconfig:"WORKBOOK"`
	Charts   bool   `yaml:"charts" envconfig:"CHARTS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. A .env file in the working
// directory is loaded first if present.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// Defaults only, so the file can override them.
	cfg := Default()

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", file, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides cfg with every variable that is actually set.
// Unset variables leave the defaults and file values alone.
func applyEnv(cfg *Config) error {
	var env Config
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return err
	}

	set := func(name string) bool {
		_, ok := os.LookupEnv(EnvPrefix + "_" + name)
		return ok
	}

	if set("INPUTS_AID") {
		cfg.Inputs.Aid = env.Inputs.Aid
	}
	if set("INPUTS_INCOME") {
		cfg.Inputs.Income = env.Inputs.Income
	}
	if set("YEARS_FIRST") {
		cfg.Years.First = env.Years.First
	}
	if set("YEARS_LAST") {
		cfg.Years.Last = env.Years.Last
	}
	if set("ID_COLUMN") {
		cfg.IDColumn = env.IDColumn
	}
	if set("REGIONS_FILE") {
		cfg.Regions.File = env.Regions.File
	}
	if set("REGIONS_NAME") {
		cfg.Regions.Name = env.Regions.Name
	}
	if set("IMPUTE_POLICY") {
		cfg.Impute.Policy = env.Impute.Policy
	}
	if set("ANALYSIS_TOP_N") {
		cfg.Analysis.TopN = env.Analysis.TopN
	}
	if set("ANALYSIS_FOCUS") {
		cfg.Analysis.Focus = env.Analysis.Focus
	}
	if set("OUTPUT_DIR") {
		cfg.Output.Dir = env.Output.Dir
	}
	if set("OUTPUT_SNAPSHOT") {
		cfg.Output.Snapshot = env.Output.Snapshot
	}
	if set("OUTPUT_WORKBOOK") {
		cfg.Output.Workbook = env.Output.Workbook
	}
	if set("OUTPUT_CHARTS") {
		cfg.Output.Charts = env.Output.Charts
	}
	if set("LOGGING_LEVEL") {
		cfg.Logging.Level = env.Logging.Level
	}
	if set("LOGGING_FORMAT") {
		cfg.Logging.Format = env.Logging.Format
	}
	if set("LOGGING_OUTPUT") {
		cfg.Logging.Output = env.Logging.Output
	}
	if set("LOGGING_FILE_PATH") {
		cfg.Logging.FilePath = env.Logging.FilePath
	}

	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// SnapshotPath returns the location of the JSON results.
func (c *Config) SnapshotPath() string {
	return c.outputPath(c.Output.Snapshot)
}

// WorkbookPath returns the location of the xlsx export, or "" when disabled.
func (c *Config) WorkbookPath() string {
	if c.Output.Workbook == "" {
		return ""
	}
	return c.outputPath(c.Output.Workbook)
}

// ChartPath returns the location of a named chart.
func (c *Config) ChartPath(name string) string {
	return c.outputPath(name + ".png")
}

func (c *Config) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// Default returns default configuration. It is the only place defaults are set.
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Aid:    "data/aid_received_per_person_current_us.csv",
			Income: "data/income_per_person_gdppercapita_ppp_inflation_adjusted.csv",
		},
		Years: YearsConfig{
			First: 1995,
			Last:  2017,
		},
		IDColumn: "country",
		Regions: RegionsConfig{
			Name: "africa",
		},
		Impute: ImputeConfig{
			Policy: "error",
		},
		Analysis: AnalysisConfig{
			TopN: 2,
		},
		Output: OutputConfig{
			Dir:      "out",
			Snapshot: "results.json",
			Workbook: "results.xlsx",
			Charts:   true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/aidstats.log",
		},
	}
}
