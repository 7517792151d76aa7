// Package config provides configuration loading, merging, and validation
// facilities for the render-status monitor.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A local .env file (when present)
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [GetConfig].
package config
