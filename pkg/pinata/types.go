package pinata

import "time"

// Pin is one row of the pin service's pin list.
type Pin struct {
	ID           string      `json:"id"`
	CID          string      `json:"ipfs_pin_hash"`
	Size         int64       `json:"size"`
	UserID       string      `json:"user_id"`
	DatePinned   time.Time   `json:"date_pinned"`
	DateUnpinned *time.Time  `json:"date_unpinned"`
	Metadata     PinMetadata `json:"metadata"`
}

// PinMetadata is the user-supplied metadata stored with a pin.
type PinMetadata struct {
	Name      *string        `json:"name"`
	KeyValues map[string]any `json:"keyvalues"`
}

// PinList is the result of a pin list query.
type PinList struct {
	Count int   `json:"count"`
	Rows  []Pin `json:"rows"`
}
