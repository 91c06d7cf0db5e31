// Package config loads the operator-facing settings for the consensus
// tool: which network to run against, where checkpoint data comes from,
// and how the MMS reaches its transport. Defaults are set in code,
// overridden by a YAML file, then overridden again by command-line flags
// — command-line always wins.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gitlab.com/jaxnet/cryptonote-consensus/hardfork"
)

const (
	defaultConfigFilename = "cnconsensus.yaml"
	defaultNetwork        = "mainnet"
	defaultLogLevel       = "info"
	defaultMMSFile        = "mms-store.bin"

	defaultBitmessageAddress = "http://localhost:8442/"
	defaultBitmessageLogin   = "username:password"
)

// Config is the full set of settings the tool needs. Fields carry both
// yaml and go-flags tags so the same struct drives file and CLI parsing.
type Config struct {
	ConfigFile string `short:"c" long:"configfile" description:"Path to configuration file" yaml:"-"`

	Network  string `short:"n" long:"network" description:"mainnet, testnet, or stagenet" yaml:"network"`
	LogLevel string `long:"loglevel" description:"trace, debug, info, warn, error" yaml:"log_level"`

	CheckpointJSONPath string   `long:"checkpoint-json" description:"path to a checkpoint hashlines JSON file" yaml:"checkpoint_json_path"`
	CheckpointDNSHosts []string `long:"checkpoint-dns-host" description:"DNSSEC TXT hostname for checkpoints (repeatable); stored only, the DNS checkpoint loader does not read it" yaml:"checkpoint_dns_hosts"`

	MMSFile           string `long:"mms-file" description:"path to the encrypted MMS store file" yaml:"mms_file"`
	BitmessageAddress string `long:"bitmessage-address" description:"Use PyBitmessage instance at URL <arg>" yaml:"bitmessage_address"`
	BitmessageLogin   string `long:"bitmessage-login" description:"username:password for the PyBitmessage API" yaml:"bitmessage_login"`
}

// Default returns the built-in settings used before any file or flag is
// applied.
func Default() Config {
	return Config{
		ConfigFile:        defaultConfigFilename,
		Network:           defaultNetwork,
		LogLevel:          defaultLogLevel,
		MMSFile:           defaultMMSFile,
		BitmessageAddress: defaultBitmessageAddress,
		BitmessageLogin:   defaultBitmessageLogin,
	}
}

// NetworkValue maps the config's string network name to hardfork.Network.
func (c Config) NetworkValue() (hardfork.Network, error) {
	switch c.Network {
	case "mainnet", "":
		return hardfork.Mainnet, nil
	case "testnet":
		return hardfork.Testnet, nil
	case "stagenet":
		return hardfork.Stagenet, nil
	default:
		return 0, errors.Errorf("config: unknown network %q", c.Network)
	}
}

// Load builds a Config: defaults, then the config file if present, then
// command-line flags, each layer overriding the last.
func Load(args []string) (*Config, []string, error) {
	cfg := Default()

	preParser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, nil, errors.Wrap(err, "config: pre-parsing command line for config file location")
	}

	if data, err := os.ReadFile(cfg.ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, nil, errors.Wrapf(err, "config: parsing %s", cfg.ConfigFile)
		}
	} else if !os.IsNotExist(err) {
		return nil, nil, errors.Wrapf(err, "config: reading %s", cfg.ConfigFile)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, errors.Wrap(err, "config: parsing command line")
	}

	if _, err := cfg.NetworkValue(); err != nil {
		return nil, nil, err
	}

	return &cfg, remaining, nil
}

// WriteSample writes a sample YAML file holding the default settings to
// path, useful for a first-run operator.
func WriteSample(path string) error {
	cfg := Default()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "config: marshalling sample config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "config: creating config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "config: writing sample config")
	}
	fmt.Fprintf(os.Stderr, "wrote sample config to %s\n", path)
	return nil
}
