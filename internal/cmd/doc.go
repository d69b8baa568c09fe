// Package cmd provides the command-line interface implementation for delium.
//
// It uses the Cobra library for command structure and Fang for styling.
// Each subcommand lives in its own file with a constructor returning a
// *cobra.Command:
//   - derive: flat and path derivations of a single input
//   - path: validate a derivation path and list its segments
//   - seed: generate a random vector file
//   - verify: check a vector file, or the reference vectors
//   - algorithms: list the supported digest algorithms
//
// Defaults come from internal/config, so DELIUM_* variables and a .env file
// apply to every subcommand; flags given on the command line win.
package cmd
