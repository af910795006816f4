package collectionstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
)

// AvatarDao is a data access object that maps directly to the 'collection_avatars' table in PostgreSQL.
type AvatarDao struct {
	bun.BaseModel     `bun:"table:collection_avatars,alias:ca"`
	CollectionAddress string    `bun:"collection_address,pk,type:varchar(42)"`
	AvatarURL         *string   `bun:"avatar_url,type:text"`
	IPFSCID           *string   `bun:"ipfs_cid,type:varchar(255)"`
	CreatorWallet     *string   `bun:"creator_wallet,type:varchar(42)"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ContractDao is a data access object that maps directly to the 'collection_contracts' table in PostgreSQL.
type ContractDao struct {
	bun.BaseModel   `bun:"table:collection_contracts,alias:cc"`
	ContractAddress string          `bun:"contract_address,pk,type:varchar(42)"`
	CreatorWallet   string          `bun:"creator_wallet,notnull,type:varchar(42)"`
	Name            string          `bun:"name,notnull,type:varchar(255)"`
	Symbol          *string         `bun:"symbol,type:varchar(32)"`
	Network         *string         `bun:"network,type:varchar(32)"`
	ImagesCID       *string         `bun:"images_cid,type:varchar(255)"`
	MetadataCID     *string         `bun:"metadata_cid,type:varchar(255)"`
	BaseURI         *string         `bun:"base_uri,type:text"`
	MintPrice       decimal.Decimal `bun:"mint_price,notnull,type:numeric(38,18),default:0"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ArtistDao is a data access object that maps directly to the 'artist_permissions' table in PostgreSQL.
type ArtistDao struct {
	bun.BaseModel `bun:"table:artist_permissions,alias:ap"`
	WalletAddress string    `bun:"wallet_address,pk,type:varchar(42)"`
	XHandle       *string   `bun:"x_handle,type:varchar(255)"`
	DisplayName   *string   `bun:"display_name,type:varchar(255)"`
	Featured      bool      `bun:"featured,notnull,default:false"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toAvatarDao(a *collection.Avatar) *AvatarDao {
	return &AvatarDao{
		CollectionAddress: a.CollectionAddress,
		AvatarURL:         nullable(a.AvatarURL),
		IPFSCID:           nullable(a.IPFSCID),
		CreatorWallet:     nullable(a.CreatorWallet),
	}
}

func toAvatar(dao *AvatarDao) *collection.Avatar {
	return &collection.Avatar{
		CollectionAddress: dao.CollectionAddress,
		AvatarURL:         deref(dao.AvatarURL),
		IPFSCID:           deref(dao.IPFSCID),
		CreatorWallet:     deref(dao.CreatorWallet),
		UpdatedAt:         dao.UpdatedAt,
	}
}

func toContractDao(c *collection.Contract) *ContractDao {
	return &ContractDao{
		ContractAddress: c.ContractAddress,
		CreatorWallet:   c.CreatorWallet,
		Name:            c.Name,
		Symbol:          nullable(c.Symbol),
		Network:         nullable(c.Network),
		ImagesCID:       nullable(c.ImagesCID),
		MetadataCID:     nullable(c.MetadataCID),
		BaseURI:         nullable(c.BaseURI),
		MintPrice:       c.MintPrice,
	}
}

func toContract(dao *ContractDao) *collection.Contract {
	return &collection.Contract{
		ContractAddress: dao.ContractAddress,
		CreatorWallet:   dao.CreatorWallet,
		Name:            dao.Name,
		Symbol:          deref(dao.Symbol),
		Network:         deref(dao.Network),
		ImagesCID:       deref(dao.ImagesCID),
		MetadataCID:     deref(dao.MetadataCID),
		BaseURI:         deref(dao.BaseURI),
		MintPrice:       dao.MintPrice,
		CreatedAt:       dao.CreatedAt,
		UpdatedAt:       dao.UpdatedAt,
	}
}

func toArtistDao(a *collection.Artist) *ArtistDao {
	return &ArtistDao{
		WalletAddress: a.WalletAddress,
		XHandle:       nullable(a.XHandle),
		DisplayName:   nullable(a.DisplayName),
		Featured:      a.Featured,
	}
}

func toArtist(dao *ArtistDao) *collection.Artist {
	return &collection.Artist{
		WalletAddress: dao.WalletAddress,
		XHandle:       deref(dao.XHandle),
		DisplayName:   deref(dao.DisplayName),
		Featured:      dao.Featured,
		CreatedAt:     dao.CreatedAt,
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
