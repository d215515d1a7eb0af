// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: read-only TOML configuration (users edit the file,
//     the CLI only consumes it)
//
// Recognised configuration keys:
//
//	github_token  personal access token for the GitHub API
//	data_dir      override for the SQLite data directory
//	max_files     cap on files fetched per repository
//	max_cards     cap on generated deck size
//	batch_size    concurrent file downloads per batch
package file
