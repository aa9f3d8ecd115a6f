package config

import "time"

const (
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

func boolPtr(v bool) *bool { return &v }

// defaults is merged last, so it only fills what no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
			BasePath:       "/RemoteStorage",
		},
		Storage: Storage{
			Backend: BackendFile,
			Files:   Files{Root: "App_Data/PassWeb"},
			Bolt:    Bolt{Path: "App_Data/passweb.db"},
		},
		Features: Features{
			AllowList:                   boolPtr(false),
			BackupFile:                  boolPtr(true),
			BlockNew:                    boolPtr(true),
			SimpleCORS:                  boolPtr(false),
			ThrottleRequest:             boolPtr(true),
			SerializeWrites:             boolPtr(false),
			TestAllowBypassBlockNew:     boolPtr(false),
			TestAllowListIncludeBackups: boolPtr(false),
			TestCreateUniqueDirectory:   boolPtr(false),
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080/RemoteStorage",
			RequestTimeout: 15 * time.Second,
		},
		Client: Client{
			CacheDSN: "passweb-cache.db",
			LogFile:  "passweb-client.log",
		},
		Workers: Workers{
			SyncInterval:      5 * time.Minute,
			InactivityTimeout: 3 * time.Minute,
		},
	}
}
