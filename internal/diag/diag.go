// Package diag rewrites diagnostics of the underlying UUID parser so that
// user-facing messages name the FUUID type instead.
package diag

import "regexp"

var uuidWord = regexp.MustCompile(`\bUUID\b`)

// Rename replaces whole-word occurrences of "UUID" in msg with "FUUID".
func Rename(msg string) string {
	return uuidWord.ReplaceAllString(msg, "FUUID")
}
