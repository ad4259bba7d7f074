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

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-driver storage driver (postgres, sqlite, memory)
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session duration (e.g., "12h")
//	-reset-token-key reset token digest key
//	-reset-token-ttl reset link validity (e.g., "24h")
//	-reset-base-url portal origin used in reset links
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-kind mail backend (http, nats)
//	-mail-api mail API base URL
//	-nats-url NATS server URL
//	-otlp-endpoint OTLP/HTTP collector host:port
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("intern-portal", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Storage driver: postgres, sqlite or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session duration (e.g., 12h)")
	fs.StringVar(&cfg.App.ResetTokenKey, "reset-token-key", "", "Reset token digest key")
	fs.DurationVar(&cfg.App.ResetTokenTTL, "reset-token-ttl", 0, "Reset link validity (e.g., 24h)")
	fs.StringVar(&cfg.App.ResetBaseURL, "reset-base-url", "", "Portal origin used in reset links")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Mail.Kind, "mail-kind", "", "Mail backend: http or nats")
	fs.StringVar(&cfg.Mail.APIAddress, "mail-api", "", "Mail API base URL")
	fs.StringVar(&cfg.Mail.NATSURL, "nats-url", "", "NATS server URL")
	fs.StringVar(&cfg.Telemetry.OTLPEndpoint, "otlp-endpoint", "", "OTLP/HTTP collector host:port")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
