package ipfs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCID(t *testing.T) {
	require.NoError(t, ValidateCID("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"))
	require.NoError(t, ValidateCID("bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"))
	require.Error(t, ValidateCID("not-a-cid"))
	require.Error(t, ValidateCID(""))
}

func TestGatewayURL(t *testing.T) {
	require.Equal(t, "https://gw.example/ipfs/Qm1", GatewayURL("https://gw.example/ipfs/", "Qm1"))
	require.Equal(t, "https://gw.example/ipfs/Qm1", GatewayURL("https://gw.example/ipfs", "Qm1"))
}

func TestCIDUpdate(t *testing.T) {
	var empty CIDUpdate
	require.True(t, empty.IsEmpty())
	require.Empty(t, empty.Columns())

	meta := "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
	base := "ipfs://" + meta + "/"
	u := CIDUpdate{MetadataCID: &meta, BaseURI: &base}
	require.False(t, u.IsEmpty())
	_, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"metadata_cid": meta, "base_uri": base}, u.Columns())

	bad := "nope"
	_, err = CIDUpdate{ImagesCID: &bad}.Normalize()
	require.Error(t, err)
}

func TestNormalizeCID(t *testing.T) {
	c := "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

	got, err := NormalizeCID("  " + c + "\n")
	require.NoError(t, err)
	require.Equal(t, c, got)

	got, err = NormalizeCID("   ")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = NormalizeCID("nope")
	require.Error(t, err)
}

func TestCIDUpdate_Normalize(t *testing.T) {
	c := "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
	padded := " " + c + " "
	base := " ipfs://x/ "

	u, err := CIDUpdate{ImagesCID: &padded, BaseURI: &base}.Normalize()
	require.NoError(t, err)
	require.Equal(t, c, *u.ImagesCID)
	require.Nil(t, u.MetadataCID)
	require.Equal(t, base, *u.BaseURI)
	require.Equal(t, " "+c+" ", padded)
}
