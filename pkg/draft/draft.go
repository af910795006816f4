// Package draft defines collection-launch drafts and their chunked file uploads.
package draft

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a wallet has no draft.
	ErrNotFound = errors.New("draft not found")
	// ErrChunkDraftNotFound is returned when a chunk references an unknown draft id.
	ErrChunkDraftNotFound = errors.New("chunk references unknown draft")
)

// UploadMode selects how collection assets are provided.
type UploadMode string

const (
	UploadModeImages   UploadMode = "images"
	UploadModePrebuilt UploadMode = "prebuilt"
)

// Status is the draft lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
)

// StagedFile describes a file the client has staged for chunked upload.
type StagedFile struct {
	Name        string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
	Type        string `json:"type"`
	FileIndex   int    `json:"fileIndex" validate:"min=0"`
	TotalChunks int    `json:"totalChunks" validate:"min=0"`
}

// Draft is the in-progress launch configuration of one wallet.
type Draft struct {
	ID             uuid.UUID      `json:"id"`
	WalletAddress  string         `json:"walletAddress"`
	CollectionName string         `json:"collectionName"`
	Description    string         `json:"description"`
	UploadMode     UploadMode     `json:"uploadMode"`
	LaunchConfig   map[string]any `json:"launchConfig"`
	CurrentStep    int            `json:"currentStep"`
	StagedFiles    []StagedFile   `json:"stagedFiles"`
	Status         Status         `json:"status"`
	ImagesCID      string         `json:"imagesCid"`
	MetadataCID    string         `json:"metadataCid"`
	BaseURI        string         `json:"baseUri"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// SaveRequest is a complete snapshot of the launch wizard. Saving replaces
// the stored draft; omitted fields are stored as their zero value, except
// UploadMode and Status which fall back to images and draft.
type SaveRequest struct {
	WalletAddress  string         `json:"wallet" validate:"required"`
	CollectionName string         `json:"collectionName" validate:"max=255"`
	Description    string         `json:"description"`
	UploadMode     UploadMode     `json:"uploadMode" validate:"omitempty,oneof=images prebuilt"`
	LaunchConfig   map[string]any `json:"launchConfig"`
	CurrentStep    int            `json:"currentStep" validate:"min=0"`
	StagedFiles    []StagedFile   `json:"stagedFiles" validate:"dive"`
	Status         Status         `json:"status" validate:"omitempty,oneof=draft finalized"`
	ImagesCID      string         `json:"imagesCid"`
	MetadataCID    string         `json:"metadataCid"`
	BaseURI        string         `json:"baseUri"`
}

// ToDraft builds the stored form of the snapshot for walletAddress.
func (r *SaveRequest) ToDraft(walletAddress string) *Draft {
	d := &Draft{
		WalletAddress:  walletAddress,
		CollectionName: r.CollectionName,
		Description:    r.Description,
		UploadMode:     r.UploadMode,
		LaunchConfig:   r.LaunchConfig,
		CurrentStep:    r.CurrentStep,
		StagedFiles:    r.StagedFiles,
		Status:         r.Status,
		ImagesCID:      r.ImagesCID,
		MetadataCID:    r.MetadataCID,
		BaseURI:        r.BaseURI,
	}
	if d.UploadMode == "" {
		d.UploadMode = UploadModeImages
	}
	if d.Status == "" {
		d.Status = StatusDraft
	}
	if d.StagedFiles == nil {
		d.StagedFiles = []StagedFile{}
	}
	return d
}

// Chunk is one piece of a staged file. (DraftID, FileIndex, ChunkIndex) is unique.
type Chunk struct {
	DraftID    uuid.UUID
	FileIndex  int
	ChunkIndex int
	Data       string
}

// ChunkUploadRequest is the body of a chunk upload.
type ChunkUploadRequest struct {
	DraftID    string `json:"draftId" validate:"required,uuid"`
	FileIndex  *int   `json:"fileIndex" validate:"required,min=0"`
	ChunkIndex *int   `json:"chunkIndex" validate:"required,min=0"`
	ChunkData  string `json:"chunkData" validate:"required"`
}

// ChunkList reports which chunks of a file have been stored.
type ChunkList struct {
	DraftID   string `json:"draftId"`
	FileIndex int    `json:"fileIndex"`
	Chunks    []int  `json:"chunks"`
}
