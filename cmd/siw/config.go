// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dalzilio/siw"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunConfig holds the search parameters of the solve command. Values are read
// from an optional YAML file and can be overridden with flags.
type RunConfig struct {
	MaxWidth      int           `yaml:"max_width" validate:"gte=1,lte=8"`
	MaxRules      int           `yaml:"max_rules" validate:"gte=1"`
	MaxExpansions int           `yaml:"max_expansions" validate:"gte=0"`
	Mode          string        `yaml:"mode" validate:"oneof=reroot lookahead"`
	Table         string        `yaml:"table" validate:"oneof=map dense"`
	TableSize     int           `yaml:"table_size" validate:"gt=0"`
	Sketch        string        `yaml:"sketch"`
	Jobs          int           `yaml:"jobs" validate:"gte=1,lte=256"`
	Timeout       time.Duration `yaml:"timeout" validate:"gte=0"`
	MetricsAddr   string        `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	Seed          int64         `yaml:"seed"`
	Sample        int           `yaml:"sample" validate:"gte=0"`
}

func defaultRunConfig() RunConfig {
	return RunConfig{
		MaxWidth:  2,
		MaxRules:  10000,
		Mode:      "reroot",
		Table:     "map",
		TableSize: 1 << 28,
		Jobs:      4,
	}
}

var configValidate = validator.New()

// loadRunConfig reads a YAML file on top of the default values.
func loadRunConfig(path string) (RunConfig, error) {
	conf := defaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "cannot read config")
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "cannot decode config %s", path)
	}
	return conf, nil
}

// resolveConfig computes the configuration of a command from the config file
// and the flags that were explicitly set.
func resolveConfig(cmd *cobra.Command) (RunConfig, error) {
	conf := defaultRunConfig()
	if configPath != "" {
		var err error
		if conf, err = loadRunConfig(configPath); err != nil {
			return conf, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("max-width") {
		conf.MaxWidth = maxWidth
	}
	if flags.Changed("max-rules") {
		conf.MaxRules = maxRules
	}
	if flags.Changed("max-expansions") {
		conf.MaxExpansions = maxExpand
	}
	if flags.Changed("mode") {
		conf.Mode = modeName
	}
	if flags.Changed("table") {
		conf.Table = tableName
	}
	if flags.Changed("table-size") {
		conf.TableSize = tableSize
	}
	if flags.Changed("jobs") {
		conf.Jobs = jobs
	}
	if flags.Changed("metrics-addr") {
		conf.MetricsAddr = metricsAddr
	}
	if flags.Changed("seed") {
		conf.Seed = seed
	}
	if flags.Changed("sample") {
		conf.Sample = sampleSize
	}
	if sketchPath != "" {
		conf.Sketch = sketchPath
	}
	if flags.Changed("timeout") {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return conf, errors.Wrap(err, "invalid timeout")
		}
		conf.Timeout = d
	}
	if err := configValidate.Struct(conf); err != nil {
		return conf, errors.Wrap(err, "invalid configuration")
	}
	return conf, nil
}

// options returns the planner options matching conf. The sketch, if any, is
// added by the caller since it depends on the problem.
func (conf RunConfig) options(logger *slog.Logger, sink siw.Sink) ([]siw.Option, error) {
	mode, err := siw.ParseMode(conf.Mode)
	if err != nil {
		return nil, err
	}
	kind, err := siw.ParseTableKind(conf.Table)
	if err != nil {
		return nil, err
	}
	opts := []siw.Option{
		siw.Maxwidth(conf.MaxWidth),
		siw.Maxrules(conf.MaxRules),
		siw.Maxexpansions(conf.MaxExpansions),
		siw.Usemode(mode),
		siw.Tablekind(kind),
		siw.Tablesize(conf.TableSize),
		siw.Seed(conf.Seed),
		siw.Samplesize(conf.Sample),
		siw.Logger(logger),
	}
	if sink != nil {
		opts = append(opts, siw.Observer(sink))
	}
	return opts, nil
}
