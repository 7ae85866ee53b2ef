package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"gobf"
)

// Config carries the file-backed settings shared by every subcommand. Flags
// take precedence over the config file.
type Config struct {
	TapeSize int    `yaml:"tape_size"`
	EOF      string `yaml:"eof"`
	Trace    bool   `yaml:"trace"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// settings is the merged view of config file and flags.
type settings struct {
	tapeSize int
	eof      gobf.EOFPolicy
	trace    bool
}

func resolveSettings() (settings, error) {
	var s settings

	if cfgFile != "" {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return s, err
		}
		if cfg.TapeSize > 0 {
			s.tapeSize = cfg.TapeSize
		}
		if cfg.EOF != "" {
			p, err := parseEOFPolicy(cfg.EOF)
			if err != nil {
				return s, fmt.Errorf("config file %q: %w", cfgFile, err)
			}
			s.eof = p
		}
		s.trace = cfg.Trace
	}

	if tapeSize > 0 {
		s.tapeSize = tapeSize
	}
	if eofName != "" {
		p, err := parseEOFPolicy(eofName)
		if err != nil {
			return s, err
		}
		s.eof = p
	}
	if trace {
		s.trace = true
	}
	return s, nil
}

func parseEOFPolicy(name string) (gobf.EOFPolicy, error) {
	switch name {
	case "zero":
		return gobf.EOFZero, nil
	case "all-ones":
		return gobf.EOFAllOnes, nil
	case "unchanged":
		return gobf.EOFUnchanged, nil
	case "error":
		return gobf.EOFError, nil
	}
	return 0, fmt.Errorf("unknown eof policy %q (want zero, all-ones, unchanged, or error)", name)
}

// vmOptions builds VM options from the merged settings and the given streams.
func (s settings) vmOptions(in io.Reader, out io.Writer) []gobf.VMOption {
	opts := []gobf.VMOption{
		gobf.WithInput(in),
		gobf.WithOutput(out),
		gobf.WithEOFPolicy(s.eof),
	}
	if s.tapeSize > 0 {
		opts = append(opts, gobf.WithTapeSize(s.tapeSize))
	}
	if s.trace {
		opts = append(opts, gobf.WithLogf(log.Printf))
	}
	return opts
}
