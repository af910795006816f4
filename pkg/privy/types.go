package privy

import "strings"

const (
	// AccountTypeWallet marks a linked wallet account.
	AccountTypeWallet = "wallet"
	// AccountTypeTwitter marks a linked X (twitter) login.
	AccountTypeTwitter = "twitter_oauth"
	// WalletClientPrivy marks a wallet custodied by the provider.
	WalletClientPrivy = "privy"
)

// LinkedAccount is one identity or wallet attached to a user.
// Only the fields this service reads are decoded.
type LinkedAccount struct {
	Type             string `json:"type"`
	Address          string `json:"address,omitempty"`
	ChainType        string `json:"chain_type,omitempty"`
	WalletClientType string `json:"wallet_client_type,omitempty"`
	WalletID         string `json:"id,omitempty"`
	Username         string `json:"username,omitempty"`
	Name             string `json:"name,omitempty"`
}

// User is a provider user directory entry.
type User struct {
	ID             string          `json:"id"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts"`
}

// EmbeddedWallet returns the provider-custodied wallet linked to the user, if any.
func (u *User) EmbeddedWallet() (LinkedAccount, bool) {
	for _, acc := range u.LinkedAccounts {
		if acc.Type == AccountTypeWallet && acc.WalletClientType == WalletClientPrivy && acc.Address != "" {
			return acc, true
		}
	}
	return LinkedAccount{}, false
}

// TwitterAccount returns the linked X account, if any.
func (u *User) TwitterAccount() (LinkedAccount, bool) {
	for _, acc := range u.LinkedAccounts {
		if acc.Type == AccountTypeTwitter {
			return acc, true
		}
	}
	return LinkedAccount{}, false
}

// HasTwitterHandle reports whether the user's linked X username equals handle, ignoring case.
func (u *User) HasTwitterHandle(handle string) bool {
	acc, ok := u.TwitterAccount()
	return ok && strings.EqualFold(acc.Username, handle)
}

// Wallet is a wallet returned by the wallet creation API.
type Wallet struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	ChainType string `json:"chain_type"`
}

type searchUsersRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type searchUsersResponse struct {
	Data []User `json:"data"`
}

type walletOwner struct {
	UserID string `json:"user_id"`
}

type additionalSigner struct {
	SignerID string `json:"signer_id"`
}

type createWalletRequest struct {
	ChainType         string             `json:"chain_type"`
	Owner             walletOwner        `json:"owner"`
	AdditionalSigners []additionalSigner `json:"additional_signers,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
