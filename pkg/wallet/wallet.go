// Package wallet provisions custodial wallets for authenticated users.
package wallet

// Provisioned is the outcome of a provisioning call. Existing is true when the
// user already had an embedded wallet and nothing was created.
type Provisioned struct {
	Success  bool   `json:"success"`
	Wallet   string `json:"wallet"`
	WalletID string `json:"walletId,omitempty"`
	Existing bool   `json:"existing"`
}
