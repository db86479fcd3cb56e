// Package commands defines the tonsecurity CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hash           Derive an Argon2id key from a password
//   - keygen         Generate a box keypair and write it to a key file
//   - seal           Encrypt a message for a peer public key
//   - open           Decrypt a message from a peer public key
//   - selftest       Run the startup checks and a fresh-keypair round trip
//   - passcode new   Create a wallet passcode verifier
//   - passcode check Check a passcode against a stored verifier
//   - fingerprint    Print the short fingerprint of a public key
//
// # Implementation
//
// The root command loads configuration (environment, optional .env file, then
// flags) and builds the application context before any subcommand runs.
// Binary values on the command line and in output are standard base64.
package commands
