package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-app-version application version
//	-api-version public API version
//	-build-time build date
//	-log-level log level (debug, info, warn, error)
//	-username accepted login
//	-password accepted password
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-upstream-url upstream API base URL
//	-upstream-timeout upstream call timeout
//	-upstream-api-key upstream API key
//	-vs-currency quote currency for market data
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("coin-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var app App
	var auth Auth
	var server Server
	var upstream Upstream

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&app.Version, "app-version", "", "Application version")
	fs.StringVar(&app.APIVersion, "api-version", "", "API version")
	fs.StringVar(&app.BuildTime, "build-time", "", "Build time")
	fs.StringVar(&app.LogLevel, "log-level", "", "Log level")

	fs.StringVar(&auth.Username, "username", "", "Accepted username")
	fs.StringVar(&auth.Password, "password", "", "Accepted password")
	fs.StringVar(&auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&auth.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")

	fs.DurationVar(&server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	fs.StringVar(&upstream.BaseURL, "upstream-url", "", "Upstream API base URL")
	fs.DurationVar(&upstream.Timeout, "upstream-timeout", 0, "Upstream call timeout (e.g., 10s)")
	fs.StringVar(&upstream.APIKey, "upstream-api-key", "", "Upstream API key")
	fs.StringVar(&upstream.VsCurrency, "vs-currency", "", "Quote currency for market data")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	server.HTTPAddress = serverAddress.String()

	return &StructuredConfig{
		App:          app,
		Auth:         auth,
		Server:       server,
		Upstream:     upstream,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (listen on all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
