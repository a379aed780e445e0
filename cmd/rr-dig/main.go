package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/haukened/rr-dig/internal/dns/common/clock"
	"github.com/haukened/rr-dig/internal/dns/common/log"
	"github.com/haukened/rr-dig/internal/dns/common/utils"
	"github.com/haukened/rr-dig/internal/dns/config"
	"github.com/haukened/rr-dig/internal/dns/gateways/resolvconf"
	"github.com/haukened/rr-dig/internal/dns/gateways/upstream"
	"github.com/haukened/rr-dig/internal/dns/gateways/wire"
	"github.com/haukened/rr-dig/internal/dns/services/lookup"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "rr-dig"
)

var errMissingName = errors.New("a name to look up is required")

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"q":         "qtype",
	"s":         "server",
	"r":         "raw",
	"log-level": "log_level",
}

// cliArgs holds the parsed command line.
type cliArgs struct {
	name       string
	configFile string
	overrides  map[string]any
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one lookup and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	cfg, err := config.Load(config.Options{File: cli.configFile, Overrides: cli.overrides})
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Logging configuration error: %v\n", err)
		return 1
	}

	svc, err := buildService(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	res, err := svc.Lookup(ctx, lookup.Request{Name: cli.name, QType: cfg.QType, Raw: cfg.Raw})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	if cfg.Raw {
		fmt.Fprintln(stdout, utils.HexGroups(res.Raw))
	} else {
		fmt.Fprintln(stdout, res.Response.String())
	}
	fmt.Fprintf(stdout, "\n;; Query time: %d msec\n;; SERVER: %s\n", res.RTT.Milliseconds(), res.Server)
	return 0
}

// parseArgs accepts flags before and after the name, e.g. "rr-dig example.com -q MX".
func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s %s\nUsage: %s <name> [flags]\n", appName, version, appName)
		fs.PrintDefaults()
	}

	qtype := fs.String("q", config.DEFAULT_APP_CONFIG.QType, "query type, e.g. A, AAAA, MX, TXT, ANY")
	server := fs.String("s", "", "server to query as ip or ip:port (default: first nameserver in resolv.conf)")
	raw := fs.Bool("r", false, "print the reply as hex instead of decoding it")
	logLevel := fs.String("log-level", config.DEFAULT_APP_CONFIG.LogLevel, "log level: debug, info, warn, error")
	configFile := fs.String("config", "", "optional YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return cliArgs{}, errMissingName
	}
	name := rest[0]
	if err := fs.Parse(rest[1:]); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 0 {
		return cliArgs{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	values := map[string]any{
		"q":         *qtype,
		"s":         *server,
		"r":         *raw,
		"log-level": *logLevel,
	}
	overrides := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})

	return cliArgs{name: name, configFile: *configFile, overrides: overrides}, nil
}

// buildService wires the codec, upstream client and lookup service together.
func buildService(cfg *config.AppConfig) (*lookup.Service, error) {
	logger := log.GetLogger()

	server := cfg.ServerAddress()
	if server == "" {
		discovered, err := resolvconf.Discover(cfg.ResolvConf, cfg.Port)
		if err != nil {
			return nil, fmt.Errorf("failed to discover resolver: %w", err)
		}
		server = discovered
	}

	codec := wire.NewUDPCodec(logger)

	client, err := upstream.NewClient(upstream.Options{
		Server: server,
		Codec:  codec,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	return lookup.NewService(lookup.Options{
		Upstream: client,
		Encoder:  codec,
		Clock:    &clock.RealClock{},
		Logger:   logger,
	})
}
