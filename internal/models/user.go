// Package models defines the data types persisted by the notekeeper store.
package models

// User is an account record in the registry. The registry is persisted as a
// single JSON array under one key and rewritten whole on every change.
type User struct {
	// Username uniquely identifies the account. Case-sensitive, immutable.
	Username string `json:"username"`

	// Password holds the encoded password hash, never the plaintext.
	Password string `json:"password"`

	// CreatedAt is the account creation time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
}
