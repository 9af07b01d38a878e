// Package config provides configuration loading, merging, and validation
// facilities for wrench.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Environment variables
//  2. JSON config file
//  3. Built-in defaults
//
// The main entry point is [GetClientConfig]. Command-line flag overrides are
// the CLI layer's responsibility and are applied on top of the result.
package config
