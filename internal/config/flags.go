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
//	-a server (or agent) listen address in format [host]:[port]
//	-d remote database DSN
//	-l local cache SQLite file path
//	-r remote store address used by the client
//	-b public base URL of tree pages
//	-c/-config json file path with configs
//	-log-file client log file path
//	-headless run the client without the terminal UI
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe-interval connectivity probe interval (e.g., "5s")
//	-probe-timeout connectivity probe timeout (e.g., "2s")
//
// The -a flag sets both the server and the agent listen address; each binary
// only reads its own.
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var databaseDSN string
	var localDSN string
	var remoteAddress string
	var baseURL string
	var jsonConfigPath string
	var logFile string
	var headless bool
	var requestTimeout time.Duration
	var probeInterval time.Duration
	var probeTimeout time.Duration

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&localDSN, "l", "", "Local cache SQLite file path")
	flag.StringVar(&remoteAddress, "r", "", "Remote store address")
	flag.StringVar(&baseURL, "b", "", "Public base URL of tree pages")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.BoolVar(&headless, "headless", false, "Run the client without the terminal UI")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 5s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Connectivity probe timeout (e.g., 2s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BaseURL: baseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: Local{
				DSN: localDSN,
			},
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Agent: Agent{
			HTTPAddress: listenAddress.String(),
			LogFile:     logFile,
			Headless:    headless,
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
			ProbeTimeout:  probeTimeout,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
