// Package ipfs holds content-identifier helpers shared by drafts, pin
// tracking and collection metadata.
package ipfs

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
)

// ValidateCID checks that s parses as a v0 or v1 content identifier.
func ValidateCID(s string) error {
	if _, err := cid.Decode(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid cid %q: %w", s, err)
	}
	return nil
}

// NormalizeCID trims s and validates it. An empty value stays empty, so
// optional CID fields pass through unchanged.
func NormalizeCID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if err := ValidateCID(s); err != nil {
		return "", err
	}
	return s, nil
}

// GatewayURL builds a gateway-qualified URL for c. The gateway may be given
// with or without a trailing slash.
func GatewayURL(gateway, c string) string {
	return strings.TrimRight(gateway, "/") + "/" + strings.TrimSpace(c)
}

// CIDUpdate is a partial update of the IPFS reference fields carried by
// drafts, tracking rows and contract records. Nil fields are left unchanged.
type CIDUpdate struct {
	ImagesCID   *string
	MetadataCID *string
	BaseURI     *string
}

// IsEmpty reports whether the update changes nothing.
func (u CIDUpdate) IsEmpty() bool {
	return u.ImagesCID == nil && u.MetadataCID == nil && u.BaseURI == nil
}

// Normalize returns a copy of u with the CID fields trimmed, failing on the
// first one that does not parse. BaseURI is free-form.
func (u CIDUpdate) Normalize() (CIDUpdate, error) {
	for _, c := range []**string{&u.ImagesCID, &u.MetadataCID} {
		if *c == nil {
			continue
		}
		v := strings.TrimSpace(**c)
		if err := ValidateCID(v); err != nil {
			return CIDUpdate{}, err
		}
		*c = &v
	}
	return u, nil
}

// Columns returns the column/value pairs to set, keyed by column name.
func (u CIDUpdate) Columns() map[string]string {
	cols := make(map[string]string, 3)
	if u.ImagesCID != nil {
		cols["images_cid"] = *u.ImagesCID
	}
	if u.MetadataCID != nil {
		cols["metadata_cid"] = *u.MetadataCID
	}
	if u.BaseURI != nil {
		cols["base_uri"] = *u.BaseURI
	}
	return cols
}
