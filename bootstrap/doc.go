// Package bootstrap wires a benchmark command together: it loads
// configuration, initializes logging, resolves credentials, builds the
// backend providers through their registries, and runs the harness once.
// Each cmd binary is a thin wrapper around an App.
package bootstrap
