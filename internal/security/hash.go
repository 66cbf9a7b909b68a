package security

import (
	"crypto/md5"
	"encoding/hex"
)

// HashString returns the md5 hex digest of the given string. Entry, goal and
// saved-meal identifiers are derived this way so the same name and owner
// always map to the same 32-character ID. This is identifier derivation, not
// a security boundary.
func HashString(value string) string {
	digest := md5.Sum([]byte(value))
	return hex.EncodeToString(digest[:])
}
