package draftstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
)

// DraftDao is a data access object that maps directly to the 'launch_drafts' table in PostgreSQL.
type DraftDao struct {
	bun.BaseModel  `bun:"table:launch_drafts,alias:ld"`
	ID             uuid.UUID          `bun:"id,pk,type:uuid"`
	WalletAddress  string             `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	CollectionName string             `bun:"collection_name,notnull,type:varchar(255)"`
	Description    string             `bun:"description,notnull,type:text"`
	UploadMode     string             `bun:"upload_mode,notnull,type:varchar(16)"`
	LaunchConfig   map[string]any     `bun:"launch_config,type:jsonb"`
	CurrentStep    int                `bun:"current_step,notnull"`
	StagedFiles    []draft.StagedFile `bun:"staged_files,notnull,type:jsonb"`
	Status         string             `bun:"status,notnull,type:varchar(16)"`
	ImagesCID      *string            `bun:"images_cid,type:varchar(255)"`
	MetadataCID    *string            `bun:"metadata_cid,type:varchar(255)"`
	BaseURI        *string            `bun:"base_uri,type:text"`
	CreatedAt      time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ChunkDao is a data access object that maps directly to the 'draft_file_chunks' table in PostgreSQL.
type ChunkDao struct {
	bun.BaseModel `bun:"table:draft_file_chunks,alias:dfc"`
	ID            int64     `bun:"id,pk,autoincrement"`
	DraftID       uuid.UUID `bun:"draft_id,notnull,type:uuid,unique:draft_file_chunk"`
	FileIndex     int       `bun:"file_index,notnull,unique:draft_file_chunk"`
	ChunkIndex    int       `bun:"chunk_index,notnull,unique:draft_file_chunk"`
	ChunkData     string    `bun:"chunk_data,notnull,type:text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ForeignKeys ties chunks to their draft; deleting a draft removes its chunks.
func (*ChunkDao) ForeignKeys() []string {
	return []string{`("draft_id") REFERENCES "launch_drafts" ("id") ON DELETE CASCADE`}
}

func toDraftDao(d *draft.Draft) *DraftDao {
	staged := d.StagedFiles
	if staged == nil {
		staged = []draft.StagedFile{}
	}
	return &DraftDao{
		ID:             d.ID,
		WalletAddress:  d.WalletAddress,
		CollectionName: d.CollectionName,
		Description:    d.Description,
		UploadMode:     string(d.UploadMode),
		LaunchConfig:   d.LaunchConfig,
		CurrentStep:    d.CurrentStep,
		StagedFiles:    staged,
		Status:         string(d.Status),
		ImagesCID:      nullable(d.ImagesCID),
		MetadataCID:    nullable(d.MetadataCID),
		BaseURI:        nullable(d.BaseURI),
	}
}

func toDraft(dao *DraftDao) *draft.Draft {
	staged := dao.StagedFiles
	if staged == nil {
		staged = []draft.StagedFile{}
	}
	return &draft.Draft{
		ID:             dao.ID,
		WalletAddress:  dao.WalletAddress,
		CollectionName: dao.CollectionName,
		Description:    dao.Description,
		UploadMode:     draft.UploadMode(dao.UploadMode),
		LaunchConfig:   dao.LaunchConfig,
		CurrentStep:    dao.CurrentStep,
		StagedFiles:    staged,
		Status:         draft.Status(dao.Status),
		ImagesCID:      deref(dao.ImagesCID),
		MetadataCID:    deref(dao.MetadataCID),
		BaseURI:        deref(dao.BaseURI),
		CreatedAt:      dao.CreatedAt,
		UpdatedAt:      dao.UpdatedAt,
	}
}

func toChunkDao(c *draft.Chunk) *ChunkDao {
	return &ChunkDao{
		DraftID:    c.DraftID,
		FileIndex:  c.FileIndex,
		ChunkIndex: c.ChunkIndex,
		ChunkData:  c.Data,
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
