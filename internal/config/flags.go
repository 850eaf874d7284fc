// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-credentials credentials JSON file path
//	-products cart products JSON file path
//	-d database DSN
//	-records-mode stored records decoding mode ("coerce" or "strict")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-log-level log level name
//	-disable-cart-write-lock allow concurrent cart writers
//	-validate-cart-items reject invalid cart items
//	-server server base URL used by the client
//	-client-timeout client request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var allowedOrigins string
	var credentialsPath string
	var productsPath string
	var databaseDSN string
	var recordsMode string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var logLevel string
	var disableCartWriteLock bool
	var validateCartItems bool
	var adapterAddress string
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	flag.StringVar(&credentialsPath, "credentials", "", "Credentials JSON file path")
	flag.StringVar(&productsPath, "products", "", "Cart products JSON file path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&recordsMode, "records-mode", "", "Stored records mode: coerce or strict")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&disableCartWriteLock, "disable-cart-write-lock", false, "Allow concurrent cart writers")
	flag.BoolVar(&validateCartItems, "validate-cart-items", false, "Reject invalid cart items")
	flag.StringVar(&adapterAddress, "server", "", "Server base URL used by the client")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			LogLevel:             logLevel,
			DisableCartWriteLock: disableCartWriteLock,
			ValidateCartItems:    validateCartItems,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				CredentialsPath: credentialsPath,
				ProductsPath:    productsPath,
			},
			RecordsMode: recordsMode,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitList splits a comma separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// String renders the address as host:port, bracketing IPv6 hosts. An unset
// address renders as "" so that it does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP literal; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: need address in a form `host:port`: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: port %q is not a number", ErrInvalidNetAddress, rawPort)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidNetAddress, port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
