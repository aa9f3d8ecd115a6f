package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags in args (without the program
// name). Only flags that were actually given end up in the returned config,
// so unset flags never shadow other sources.
//
// Flags:
//
//	-a                      server address in format [host]:[port]
//	--request-timeout       server read/write timeout (e.g. "30s")
//	--base-path             endpoint path suffix
//	--storage               storage backend: file, bolt, postgres
//	-f                      flat-file storage root
//	--bolt-path             bbolt database file
//	-d                      postgres DSN
//	-c/--config             JSON or YAML config file
//	--log-level             log level
//	--allow-list, --backup-file, --block-new, --simple-cors, --throttle,
//	--serialize-writes, --test-bypass-block-new, --test-list-backups,
//	--test-unique-dir       feature toggles
//	--server                RemoteStorage URL used by the client
//	--adapter-timeout       client request timeout
//	--cache                 client SQLite cache file
//	--unique-text           installation-unique text
//	--log-file              client log file
//	--sync-interval         remote refresh period
//	--inactivity-timeout    idle logout period
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("passweb", pflag.ContinueOnError)

	var serverAddress NetAddress
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	requestTimeout := fs.Duration("request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	basePath := fs.String("base-path", "", "RemoteStorage endpoint path")
	backend := fs.String("storage", "", "Storage backend: file, bolt or postgres")
	filesRoot := fs.StringP("files-root", "f", "", "File storage root directory")
	boltPath := fs.String("bolt-path", "", "bbolt database file")
	databaseDSN := fs.StringP("database-dsn", "d", "", "Database DSN")
	configPath := fs.StringP("config", "c", "", "JSON or YAML config file path")
	logLevel := fs.String("log-level", "", "Log level")

	allowList := fs.Bool("allow-list", false, "Enable listing of stored blobs")
	backupFile := fs.Bool("backup-file", false, "Back up blobs before every change")
	blockNew := fs.Bool("block-new", false, "Refuse to create brand-new blobs")
	simpleCORS := fs.Bool("simple-cors", false, "Allow same-host cross-origin requests")
	throttle := fs.Bool("throttle", false, "Throttle requests to one per second")
	serializeWrites := fs.Bool("serialize-writes", false, "Serialize operations on the same blob name")
	bypassBlockNew := fs.Bool("test-bypass-block-new", false, "Honour the bypass parameter (tests only)")
	listBackups := fs.Bool("test-list-backups", false, "Honour the backups parameter (tests only)")
	uniqueDir := fs.Bool("test-unique-dir", false, "Use a unique storage root (tests only)")

	adapterAddress := fs.String("server", "", "RemoteStorage endpoint URL")
	adapterTimeout := fs.Duration("adapter-timeout", 0, "Client request timeout")
	cacheDSN := fs.String("cache", "", "Local cache SQLite file")
	uniqueText := fs.String("unique-text", "", "Installation-unique text")
	logFile := fs.String("log-file", "", "Client log file")
	syncInterval := fs.Duration("sync-interval", 0, "Remote refresh period")
	inactivityTimeout := fs.Duration("inactivity-timeout", 0, "Idle logout period")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	changed := func(name string, v *bool) *bool {
		if fs.Changed(name) {
			return v
		}
		return nil
	}

	return &StructuredConfig{
		App: App{
			LogLevel: *logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: *requestTimeout,
			BasePath:       *basePath,
		},
		Storage: Storage{
			Backend: *backend,
			Files:   Files{Root: *filesRoot},
			Bolt:    Bolt{Path: *boltPath},
			DB:      DB{DSN: *databaseDSN},
		},
		Features: Features{
			AllowList:                   changed("allow-list", allowList),
			BackupFile:                  changed("backup-file", backupFile),
			BlockNew:                    changed("block-new", blockNew),
			SimpleCORS:                  changed("simple-cors", simpleCORS),
			ThrottleRequest:             changed("throttle", throttle),
			SerializeWrites:             changed("serialize-writes", serializeWrites),
			TestAllowBypassBlockNew:     changed("test-bypass-block-new", bypassBlockNew),
			TestAllowListIncludeBackups: changed("test-list-backups", listBackups),
			TestCreateUniqueDirectory:   changed("test-unique-dir", uniqueDir),
		},
		Adapter: Adapter{
			HTTPAddress:    *adapterAddress,
			RequestTimeout: *adapterTimeout,
		},
		Client: Client{
			CacheDSN:   *cacheDSN,
			UniqueText: *uniqueText,
			LogFile:    *logFile,
		},
		Workers: Workers{
			SyncInterval:      *syncInterval,
			InactivityTimeout: *inactivityTimeout,
		},
		ConfigFilePath: *configPath,
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// host is empty or "localhost".
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
		return errors.New("port number must be in 1..65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
