// Package pin tracks which IPFS content a wallet has pinned for its collections.
package pin

import (
	"errors"
	"time"

	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinata"
)

// ErrTrackingNotFound is returned when no tracking row matches an update.
var ErrTrackingNotFound = errors.New("tracking record not found")

// Status is the lifecycle state of a tracking row. Rows are never deleted;
// retiring a pin flips them to unpinned.
type Status string

const (
	StatusActive   Status = "active"
	StatusUnpinned Status = "unpinned"
)

// Tracking records that a wallet pinned content for a collection.
type Tracking struct {
	ID                int64     `json:"id"`
	WalletAddress     string    `json:"walletAddress"`
	CollectionAddress string    `json:"collectionAddress,omitempty"`
	ImagesCID         string    `json:"imagesCid,omitempty"`
	MetadataCID       string    `json:"metadataCid,omitempty"`
	BaseURI           string    `json:"baseUri,omitempty"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TrackRequest records a new pin. At least one CID is required.
type TrackRequest struct {
	WalletAddress     string `json:"wallet" validate:"required"`
	CollectionAddress string `json:"collectionAddress"`
	ImagesCID         string `json:"imagesCid"`
	MetadataCID       string `json:"metadataCid"`
	BaseURI           string `json:"baseUri"`
}

// UpdateRequest corrects the CIDs of the most recent tracking row for a
// wallet and collection. Only supplied fields change.
type UpdateRequest struct {
	WalletAddress     string  `json:"wallet" validate:"required"`
	CollectionAddress string  `json:"collectionAddress" validate:"required"`
	NewImagesCID      *string `json:"newImagesCid"`
	NewMetadataCID    *string `json:"newMetadataCid"`
	NewBaseURI        *string `json:"newBaseUri"`
}

// CIDUpdate returns the partial update carried by the request.
func (r *UpdateRequest) CIDUpdate() ipfs.CIDUpdate {
	return ipfs.CIDUpdate{
		ImagesCID:   r.NewImagesCID,
		MetadataCID: r.NewMetadataCID,
		BaseURI:     r.NewBaseURI,
	}
}

// UnpinRequest releases a CID, optionally scoped to a wallet's tracking rows.
type UnpinRequest struct {
	CID           string `json:"cid" validate:"required"`
	WalletAddress string `json:"wallet"`
}

// UnpinResult is the outcome of an unpin.
type UnpinResult struct {
	Success         bool   `json:"success"`
	CID             string `json:"cid"`
	AlreadyUnpinned bool   `json:"alreadyUnpinned"`
}

// ListResult places the provider's pin set next to locally tracked rows.
// The two are not correlated.
type ListResult struct {
	Pins    []pinata.Pin `json:"pins"`
	Count   int          `json:"count"`
	Tracked []*Tracking  `json:"tracked"`
}
