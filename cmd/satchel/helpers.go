// Shared helpers for satchel CLI commands.
package main

import "strings"

// joinArgs rebuilds free text that the shell split into separate arguments,
// so addresses and note content can be passed unquoted.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
