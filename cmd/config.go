package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// Config holds the settings of the run command.
// Values come from the environment, then from flags explicitly set on the command line.
type Config struct {
	Lang     string `env:"SALDO_LANG" envDefault:"en"`
	Prompt   string `env:"SALDO_PROMPT" envDefault:"auto"`
	Verbose  bool   `env:"SALDO_VERBOSE"`
	LogLevel string `env:"SALDO_LOG_LEVEL" envDefault:"debug"`
	LogFile  string `env:"SALDO_LOG_FILE"`
}

// LoadConfig reads the configuration from the environment.
// If envFile is not empty it is loaded first, without overriding variables already set.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading env file %q: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// override copies into cfg the flags that were set on the command line.
func (cfg *Config) override(f *flag.FlagSet) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "lang":
			cfg.Lang = fl.Value.String()
		case "prompt":
			cfg.Prompt = fl.Value.String()
		case "v":
			cfg.Verbose = fl.Value.String() == "true"
		case "log-level":
			cfg.LogLevel = fl.Value.String()
		case "log-file":
			cfg.LogFile = fl.Value.String()
		}
	})
}

// showPrompt resolves the prompt mode for the given input.
func (cfg Config) showPrompt(in any) (bool, error) {
	switch cfg.Prompt {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := in.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid prompt mode %q, valid values are auto, on and off", cfg.Prompt)
}
