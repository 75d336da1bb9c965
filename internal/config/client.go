package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Default values of the command-line client.
const (
	DefaultClientAddress        = "http://localhost:8000"
	DefaultClientRequestTimeout = 15 * time.Second
)

var ErrEmptyClientAddress = errors.New("client server address is empty")

// Client holds the settings of the command-line API client.
type Client struct {
	// Address is the base URL of the API server.
	// Env: CLIENT_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the bearer token sent with task commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig merges defaults, CLIENT_* environment variables and the
// flags found in args, in that order. It returns the remaining positional
// arguments, which form the client command.
func GetClientConfig(args []string) (*Client, []string, error) {
	cfg := &Client{
		Address:        DefaultClientAddress,
		RequestTimeout: DefaultClientRequestTimeout,
	}

	envCfg := &Client{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	flagCfg := &Client{}
	fs.StringVar(&flagCfg.Address, "a", "", "API server base URL")
	fs.StringVar(&flagCfg.Token, "t", "", "Bearer token")
	fs.DurationVar(&flagCfg.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for _, source := range []*Client{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, source, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	cfg.Address = strings.TrimSpace(cfg.Address)
	if cfg.Address == "" {
		return nil, nil, ErrEmptyClientAddress
	}

	return cfg, fs.Args(), nil
}
