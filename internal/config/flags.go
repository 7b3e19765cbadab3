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
//	-hash-scheme credential hash scheme ("sha256" or "argon2id")
//	-hash-salt fixed salt for the sha256 scheme
//	-token-secret session token derivation secret
//	-session-ttl session lifetime (e.g., "8h")
//	-sweep-interval session sweeper interval (e.g., "10m")
//	-legacy-users legacy users JSON file path
//	-legacy-records legacy records JSON file path
func ParseFlags() *Config {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashScheme string
	var hashSalt string
	var tokenSecret string
	var sessionTTL time.Duration
	var sweepInterval time.Duration
	var legacyUsers string
	var legacyRecords string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashScheme, "hash-scheme", "", "Credential hash scheme (sha256, argon2id)")
	flag.StringVar(&hashSalt, "hash-salt", "", "Fixed salt for the sha256 scheme")
	flag.StringVar(&tokenSecret, "token-secret", "", "Session token derivation secret")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 8h)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Session sweeper interval (e.g., 10m)")
	flag.StringVar(&legacyUsers, "legacy-users", "", "Legacy users JSON file path")
	flag.StringVar(&legacyRecords, "legacy-records", "", "Legacy records JSON file path")

	flag.Parse()

	return &Config{
		App: App{
			HashScheme:        hashScheme,
			HashSalt:          hashSalt,
			TokenSecret:       tokenSecret,
			SessionTTL:        sessionTTL,
			SweepInterval:     sweepInterval,
			LegacyUsersFile:   legacyUsers,
			LegacyRecordsFile: legacyRecords,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
