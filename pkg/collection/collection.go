// Package collection holds the off-chain metadata kept for deployed NFT
// collections: avatars, contract records and the featured artist list.
package collection

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
)

// ErrContractNotFound is returned when no contract row matches an address and owner.
var ErrContractNotFound = errors.New("contract not found")

// ErrContractExists is returned when a contract address is registered twice.
var ErrContractExists = errors.New("contract already registered")

// Avatar is the image shown for a collection. Upserts overwrite, last writer wins.
type Avatar struct {
	CollectionAddress string    `json:"collectionAddress"`
	AvatarURL         string    `json:"avatarUrl,omitempty"`
	IPFSCID           string    `json:"ipfsCid,omitempty"`
	CreatorWallet     string    `json:"creatorWallet,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SetAvatarRequest stores an avatar. When only a CID is given the URL is
// derived from the configured gateway.
type SetAvatarRequest struct {
	CollectionAddress string `json:"collectionAddress" validate:"required"`
	AvatarURL         string `json:"avatarUrl" validate:"omitempty,url"`
	IPFSCID           string `json:"ipfsCid"`
	CreatorWallet     string `json:"creatorWallet"`
}

// RegisterContractRequest records a freshly deployed collection contract.
type RegisterContractRequest struct {
	WalletAddress   string          `json:"wallet" validate:"required"`
	ContractAddress string          `json:"contractAddress" validate:"required"`
	Name            string          `json:"name" validate:"required,max=255"`
	Symbol          string          `json:"symbol" validate:"max=32"`
	Network         string          `json:"network"`
	ImagesCID       string          `json:"imagesCid"`
	MetadataCID     string          `json:"metadataCid"`
	BaseURI         string          `json:"baseUri"`
	MintPrice       decimal.Decimal `json:"mintPrice"`
}

// Image is a collection image sourced from the portfolio API.
type Image struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
	Source  string `json:"source"`
}

// Contract is the record of a deployed collection contract.
type Contract struct {
	ContractAddress string          `json:"contractAddress"`
	CreatorWallet   string          `json:"creatorWallet"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol,omitempty"`
	Network         string          `json:"network,omitempty"`
	ImagesCID       string          `json:"imagesCid,omitempty"`
	MetadataCID     string          `json:"metadataCid,omitempty"`
	BaseURI         string          `json:"baseUri,omitempty"`
	MintPrice       decimal.Decimal `json:"mintPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Artist is a row of the permission list.
type Artist struct {
	WalletAddress string    `json:"walletAddress"`
	XHandle       string    `json:"xHandle,omitempty"`
	DisplayName   string    `json:"displayName,omitempty"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Featured lists featured artists and their most recent collections.
type Featured struct {
	Success        bool        `json:"success"`
	PermissionList []*Artist   `json:"permissionList"`
	Creations      []*Contract `json:"creations"`
}

// UpdateCIDRequest replaces the IPFS references of a deployed collection.
type UpdateCIDRequest struct {
	WalletAddress   string  `json:"wallet" validate:"required"`
	ContractAddress string  `json:"contractAddress" validate:"required"`
	NewImagesCID    *string `json:"newImagesCid"`
	NewMetadataCID  *string `json:"newMetadataCid"`
	NewBaseURI      *string `json:"newBaseUri"`
}

// CIDUpdate returns the partial update carried by the request.
func (r *UpdateCIDRequest) CIDUpdate() ipfs.CIDUpdate {
	return ipfs.CIDUpdate{
		ImagesCID:   r.NewImagesCID,
		MetadataCID: r.NewMetadataCID,
		BaseURI:     r.NewBaseURI,
	}
}

// Targets written by a CID update.
const (
	TargetContract = "contract"
	TargetDraft    = "draft"
	TargetTracking = "tracking"
)

// UpdatedTargets reports which records a CID update changed.
type UpdatedTargets struct {
	Contract bool `json:"contract"`
	Draft    bool `json:"draft"`
	Tracking bool `json:"tracking"`
}

// UpdateCIDResult is the outcome of a CID update. The contract row is always
// written; Failed names the secondary targets whose write errored.
type UpdateCIDResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Updated UpdatedTargets `json:"updated"`
	Failed  []string       `json:"failed"`
}
