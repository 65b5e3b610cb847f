package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a listen address given as [host]:port. An empty host listens
// on all interfaces. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("need address in a form `[host]:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", portStr)
	}
	if strings.ContainsAny(host, " /") {
		return errors.New("host must be a hostname or an IP address")
	}

	a.Host, a.Port = host, port
	return nil
}

// ParseFlags parses the server flags in args (without the program name).
//
//	-a                server listen address [host]:port
//	-d                PostgreSQL DSN of the remote store
//	-c, -config       JSON config file
//	-token-sign-key   HMAC key the access tokens are signed with
//	-token-issuer     expected token issuer
//	-token-duration   lifetime of tokens issued by the token command
//	-request-timeout  per request timeout
//	-rate-limit       requests per minute per client IP, 0 disables
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var address NetAddress

	fs := flag.NewFlagSet("vocab-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout")
	fs.IntVar(&cfg.Server.RateLimit, "rate-limit", 0, "requests per minute per client IP")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}
	if cfg.Server.RateLimit < 0 {
		return nil, fmt.Errorf("error parsing flags: rate limit cannot be negative")
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}
