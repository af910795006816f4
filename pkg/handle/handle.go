// Package handle maps social handles to wallet addresses.
package handle

import "strings"

// Profile is a user profile row that may link a handle to a wallet.
type Profile struct {
	ID            int64
	WalletAddress string
	Username      string
	XHandle       string
	DisplayName   string
}

// Resolution is the result of resolving a handle against local profiles.
// Searched and MatchedBy expose which normalized input and which lookup
// strategy produced the match, so broad substring matches are visible.
type Resolution struct {
	Address   string `json:"address"`
	Handle    string `json:"handle"`
	Searched  string `json:"searched"`
	MatchedBy string `json:"matchedBy"`
}

// DirectoryEntry is a handle resolved through the wallet provider's user directory.
type DirectoryEntry struct {
	Handle      string `json:"handle"`
	Address     string `json:"address"`
	DisplayName string `json:"displayName"`
}

// Normalize trims whitespace, strips a leading "@" and lowercases.
func Normalize(raw string) string {
	h := strings.TrimSpace(raw)
	h = strings.TrimPrefix(h, "@")
	return strings.ToLower(strings.TrimSpace(h))
}
