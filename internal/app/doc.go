// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (optionally seeded from a .env file),
// configures the zerolog logger, and builds the hasher, box, passcode service
// and file stores, exposing them via the Wire struct for commands to use.
package app
