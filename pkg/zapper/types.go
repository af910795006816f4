package zapper

import "strings"

// Image sources reported alongside a collection image.
const (
	SourceLogo   = "logo"
	SourceBanner = "banner"
)

// CollectionImage is the preferred display image of an NFT collection.
type CollectionImage struct {
	URL    string
	Source string
}

var chainIDs = map[string]int{
	"ethereum":  1,
	"mainnet":   1,
	"optimism":  10,
	"bsc":       56,
	"polygon":   137,
	"base":      8453,
	"arbitrum":  42161,
	"avalanche": 43114,
	"zora":      7777777,
	"sepolia":   11155111,
}

// ChainID maps a network name to its EVM chain id.
func ChainID(network string) (int, bool) {
	id, ok := chainIDs[strings.ToLower(strings.TrimSpace(network))]
	return id, ok
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type media struct {
	Original string `json:"original"`
}

type collectionResponse struct {
	Data struct {
		NFTCollectionV2 *struct {
			Address string `json:"address"`
			Name    string `json:"name"`
			Medias  struct {
				Logo   *media `json:"logo"`
				Banner *media `json:"banner"`
			} `json:"medias"`
		} `json:"nftCollectionV2"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
