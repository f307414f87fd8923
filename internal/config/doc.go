// Package config provides configuration loading, merging, and validation
// facilities for the request server and the inbox client.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is never overridden):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the inbox client.
package config
