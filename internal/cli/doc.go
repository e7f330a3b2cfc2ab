// Package cli parses latticegen command-line arguments into a Config.
//
// Parse never exits the process; usage problems come back as *ExitError
// carrying the exit code, and "-h" or a missing mode asks the caller to exit
// cleanly after usage has been printed.
package cli
