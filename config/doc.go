// Package config loads the small settings the analysis tooling needs:
// output and style directories, plus free-form nested parameter trees.
//
// Settings come from a JSON file (Load) or from the environment with
// optional .env files (FromEnv); real environment variables always win
// over .env entries. Params wraps a decoded JSON object with typed
// lookups and nested sub-tree access.
//
// Loading is one-shot and minimal: missing keys stay at their zero
// values, nothing is watched or validated beyond JSON syntax.
package config
