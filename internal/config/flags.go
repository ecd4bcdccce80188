package config

import (
	"errors"
	"flag"
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
//	-d database DSN
//	-c/-config json file path with configs
//	-access-secret-key access token signing key
//	-refresh-secret-key refresh token signing key
//	-algorithm JWT signing algorithm identifier (e.g. "HS256")
//	-access-token-ttl access token lifetime (e.g., "30m")
//	-extended-access-token-ttl refreshed access token lifetime (e.g., "120m")
//	-refresh-token-ttl refresh token lifetime (e.g., "24h")
//	-google-client-id / -google-client-secret provider credentials
//	-google-redirect-uri provider callback URI
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessSecretKey string
	var refreshSecretKey string
	var algorithm string
	var accessTokenTTL time.Duration
	var extendedAccessTokenTTL time.Duration
	var refreshTokenTTL time.Duration
	var googleClientID string
	var googleClientSecret string
	var googleRedirectURI string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessSecretKey, "access-secret-key", "", "Access token signing key")
	flag.StringVar(&refreshSecretKey, "refresh-secret-key", "", "Refresh token signing key")
	flag.StringVar(&algorithm, "algorithm", "", "JWT signing algorithm (e.g. HS256)")
	flag.DurationVar(&accessTokenTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 30m)")
	flag.DurationVar(&extendedAccessTokenTTL, "extended-access-token-ttl", 0, "Refreshed access token lifetime (e.g., 120m)")
	flag.DurationVar(&refreshTokenTTL, "refresh-token-ttl", 0, "Refresh token lifetime (e.g., 24h)")
	flag.StringVar(&googleClientID, "google-client-id", "", "Google OAuth2 client id")
	flag.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth2 client secret")
	flag.StringVar(&googleRedirectURI, "google-redirect-uri", "", "Google OAuth2 redirect URI")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			AccessSecretKey:        accessSecretKey,
			RefreshSecretKey:       refreshSecretKey,
			Algorithm:              algorithm,
			AccessTokenTTL:         accessTokenTTL,
			ExtendedAccessTokenTTL: extendedAccessTokenTTL,
			RefreshTokenTTL:        refreshTokenTTL,
		},
		Google: Google{
			ClientID:     googleClientID,
			ClientSecret: googleClientSecret,
			RedirectURI:  googleRedirectURI,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
