package auth

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateEVMAddress checks if a string is a 0x-prefixed 20-byte hex address.
func ValidateEVMAddress(address string) bool {
	address = strings.TrimSpace(address)
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// NormalizeAddress returns the lowercased hex form used as the storage key
// for drafts, tracking rows and avatars.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
