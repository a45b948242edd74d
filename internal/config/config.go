// Package config loads settings for the fpidioms command from the
// environment and from YAML case files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	fp "github.com/Pure-Company/fpidioms"
)

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config is the command configuration. Flags override these values.
type Config struct {
	Debug         bool   `env:"FPIDIOMS_DEBUG" envDefault:"false"`
	LogFormat     string `env:"FPIDIOMS_LOG_FORMAT" envDefault:"console"`
	CasesFile     string `env:"FPIDIOMS_CASES_FILE"`
	TailCallLimit int64  `env:"FPIDIOMS_TAILCALL_LIMIT" envDefault:"1000000"`
}

// Load reads and validates Config from the process environment.
func Load() (Config, error) {
	return LoadEnv(nil)
}

// LoadEnv reads and validates Config from environ. A nil environ means the
// process environment.
func LoadEnv(environ map[string]string) (Config, error) {
	cfg, err := ParseEnv(environ)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv reads Config from environ without validating it, so callers can
// apply flag overrides first. A nil environ means the process environment.
func ParseEnv(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("log format %q: want %q or %q", c.LogFormat, LogFormatJSON, LogFormatConsole)
	}
	if c.TailCallLimit < 0 {
		return fmt.Errorf("tail call limit %d must not be negative", c.TailCallLimit)
	}
	return nil
}

// TradeCase is one trade in a case file. Amount is a decimal string so no
// precision is lost to float parsing.
type TradeCase struct {
	ID     string `yaml:"id"`
	Amount string `yaml:"amount"`
}

// CaseFile is the YAML document accepted by the trades command.
type CaseFile struct {
	Trades []TradeCase `yaml:"trades"`
}

// ErrNoTrades is returned for a case file without trades.
var ErrNoTrades = errors.New("case file has no trades")

// DefaultTradeCases are the trades the demonstration runs when no file is
// given.
func DefaultTradeCases() []TradeCase {
	return []TradeCase{
		{ID: "998765", Amount: "123.45"},
		{ID: "123456", Amount: "999.45"},
		{ID: "12321321", Amount: "200"},
		{ID: "33213", Amount: "333.45"},
	}
}

// LoadCaseFile reads and parses a YAML case file.
func LoadCaseFile(path string) (CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CaseFile{}, fmt.Errorf("read case file: %w", err)
	}
	return ParseCaseFile(data)
}

// ParseCaseFile parses YAML case file contents.
func ParseCaseFile(data []byte) (CaseFile, error) {
	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return CaseFile{}, fmt.Errorf("parse case file: %w", err)
	}
	if len(cf.Trades) == 0 {
		return CaseFile{}, ErrNoTrades
	}
	return cf, nil
}

// Records converts the cases to trades, failing on the first bad amount.
func (cf CaseFile) Records() ([]fp.TradeRecord, error) {
	return TradeRecords(cf.Trades)
}

// TradeRecords converts cases to trades.
func TradeRecords(cases []TradeCase) ([]fp.TradeRecord, error) {
	out := make([]fp.TradeRecord, 0, len(cases))
	for i, c := range cases {
		rec, err := fp.ParseTradeRecord(c.ID, c.Amount)
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
