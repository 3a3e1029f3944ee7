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
//	-a proxy server address in format [host]:[port]
//	-s local state file path
//	-jobs-url upstream jobs API base URL
//	-jobs-timeout upstream request timeout (e.g., "15s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-admin-email admin console login email
//	-admin-password admin console login password
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var statePath string
	var jobsURL string
	var jobsTimeout time.Duration
	var requestTimeout time.Duration
	var adminEmail string
	var adminPassword string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&statePath, "s", "", "Local state file path")
	flag.StringVar(&jobsURL, "jobs-url", "", "Jobs API base URL")
	flag.DurationVar(&jobsTimeout, "jobs-timeout", 0, "Jobs API request timeout (e.g., 15s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&adminEmail, "admin-email", "", "Admin console email")
	flag.StringVar(&adminPassword, "admin-password", "", "Admin console password")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
		},
		Storage: Storage{
			StatePath: statePath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Jobs: Jobs{
			BaseURL: jobsURL,
			Timeout: jobsTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when neither host nor port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range and checks IP correctness
// unless host is "localhost".
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
