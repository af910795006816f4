package profilestore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
)

// ProfileDao is a data access object that maps directly to the 'user_profiles' table in PostgreSQL.
type ProfileDao struct {
	bun.BaseModel `bun:"table:user_profiles,alias:up"`
	ID            int64     `bun:"id,pk,autoincrement"`
	WalletAddress *string   `bun:"wallet_address,type:varchar(42)"`
	Username      *string   `bun:"username,type:varchar(255)"`
	XHandle       *string   `bun:"x_handle,type:varchar(255)"`
	DisplayName   *string   `bun:"display_name,type:varchar(255)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toProfileDao(p *handle.Profile) *ProfileDao {
	return &ProfileDao{
		WalletAddress: nullable(p.WalletAddress),
		Username:      nullable(p.Username),
		XHandle:       nullable(p.XHandle),
		DisplayName:   nullable(p.DisplayName),
	}
}

func toProfile(dao *ProfileDao) *handle.Profile {
	return &handle.Profile{
		ID:            dao.ID,
		WalletAddress: deref(dao.WalletAddress),
		Username:      deref(dao.Username),
		XHandle:       deref(dao.XHandle),
		DisplayName:   deref(dao.DisplayName),
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
