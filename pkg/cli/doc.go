// Package cli provides the command-line interface for fakegen.
//
// The root command compiles a definition file and prints the generated
// records. Subcommands:
//   - validate: Compile definition files and report the first error in each
//   - lint: Check definition files against the definition JSON Schema
//   - schema: Print the JSON Schema of the definition format
//   - tags: List registered generator tags and the fields they need
//   - add: Add a field to a definition file, interactively or from flags
//   - config: Display effective configuration
//   - version: Show fakegen version
//   - completion: Generate shell completion scripts
//
// Configuration is layered by package cliconfig; every command sees the
// merged result.
package cli
