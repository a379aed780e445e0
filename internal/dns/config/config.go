package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "RRDIG_"

// AppConfig holds the settings of a single lookup.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Server is the resolver to query as "ip" or "ip:port".
	// When empty the first nameserver of ResolvConf is used.
	Server string `koanf:"server" validate:"omitempty,server"`

	// Port is used when Server carries no port or is discovered.
	Port int `koanf:"port" validate:"required,gte=1,lte=65535"`

	// ResolvConf is the resolver configuration file consulted for discovery.
	ResolvConf string `koanf:"resolv_conf" validate:"required"`

	// QType is the record type token to ask for, e.g. "A" or "MX".
	QType string `koanf:"qtype" validate:"required,qtype"`

	// Raw prints the reply as hex instead of decoding it.
	Raw bool `koanf:"raw"`
}

// DEFAULT_APP_CONFIG defines the default settings of a lookup.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:        "prod",
	LogLevel:   "warn",
	Server:     "",
	Port:       53,
	ResolvConf: "/etc/resolv.conf",
	QType:      "A",
	Raw:        false,
}

// Options selects the optional configuration sources of Load.
type Options struct {
	// File is an optional YAML configuration file.
	File string
	// Overrides holds values set explicitly on the command line, keyed like the koanf tags.
	Overrides map[string]any
}

// ServerAddress returns Server as host:port, adding Port when missing.
// It returns "" when no server is configured.
func (c *AppConfig) ServerAddress() string {
	if c.Server == "" {
		return ""
	}
	if _, _, err := net.SplitHostPort(c.Server); err == nil {
		return c.Server
	}
	return net.JoinHostPort(c.Server, strconv.Itoa(c.Port))
}

// validServer accepts a bare IP address or an IP:port pair.
func validServer(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if net.ParseIP(addr) != nil {
		return true
	}
	ip, port, err := net.SplitHostPort(addr)
	if err != nil || net.ParseIP(ip) == nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0
}

// validQType accepts any token domain.ParseQType understands.
func validQType(fl validator.FieldLevel) bool {
	_, err := domain.ParseQType(fl.Field().String())
	return err == nil
}

// defaultLoader loads DEFAULT_APP_CONFIG using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// fileLoader loads an optional YAML file.
var fileLoader = func(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// envLoader loads environment variables with the prefix "RRDIG_",
// lowercasing the keys and removing the prefix.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// overrideLoader loads explicitly set command line values.
var overrideLoader = func(k *koanf.Koanf, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	return k.Load(confmap.Provider(overrides, "."), nil)
}

// registerValidation registers the custom "server" and "qtype" tags.
var registerValidation = func(v *validator.Validate) error {
	if err := v.RegisterValidation("server", validServer); err != nil {
		return err
	}
	return v.RegisterValidation("qtype", validQType)
}

// Load builds an AppConfig from defaults, the optional file, the environment
// and command line overrides, in increasing order of precedence, then validates it.
func Load(opts Options) (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := fileLoader(k, opts.File); err != nil {
		return nil, fmt.Errorf("error loading config file %s: %w", opts.File, err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}
	if err := overrideLoader(k, opts.Overrides); err != nil {
		return nil, fmt.Errorf("error loading overrides: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
