// Package config provides configuration loading, merging, and validation
// facilities for passweb-server and passweb-client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is
//     loaded first without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] and [GetClientConfig].
package config
