package pinstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
)

// TrackingDao is a data access object that maps directly to the 'collection_ipfs_tracking' table in PostgreSQL.
type TrackingDao struct {
	bun.BaseModel     `bun:"table:collection_ipfs_tracking,alias:cit"`
	ID                int64     `bun:"id,pk,autoincrement"`
	WalletAddress     string    `bun:"wallet_address,notnull,type:varchar(42)"`
	CollectionAddress *string   `bun:"collection_address,type:varchar(42)"`
	ImagesCID         *string   `bun:"images_cid,type:varchar(255)"`
	MetadataCID       *string   `bun:"metadata_cid,type:varchar(255)"`
	BaseURI           *string   `bun:"base_uri,type:text"`
	Status            string    `bun:"status,notnull,type:varchar(16)"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toTrackingDao(t *pin.Tracking) *TrackingDao {
	status := t.Status
	if status == "" {
		status = pin.StatusActive
	}
	return &TrackingDao{
		WalletAddress:     t.WalletAddress,
		CollectionAddress: nullable(t.CollectionAddress),
		ImagesCID:         nullable(t.ImagesCID),
		MetadataCID:       nullable(t.MetadataCID),
		BaseURI:           nullable(t.BaseURI),
		Status:            string(status),
	}
}

func toTracking(dao *TrackingDao) *pin.Tracking {
	return &pin.Tracking{
		ID:                dao.ID,
		WalletAddress:     dao.WalletAddress,
		CollectionAddress: deref(dao.CollectionAddress),
		ImagesCID:         deref(dao.ImagesCID),
		MetadataCID:       deref(dao.MetadataCID),
		BaseURI:           deref(dao.BaseURI),
		Status:            pin.Status(dao.Status),
		CreatedAt:         dao.CreatedAt,
		UpdatedAt:         dao.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
