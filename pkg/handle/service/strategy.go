package service

import (
	"context"

	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
)

// Strategy is one lookup attempt in the resolution chain.
type Strategy struct {
	Name string
	Find func(ctx context.Context, store Store, h string) (*handle.Profile, error)
}

// Strategy names reported as matchedBy.
const (
	StrategyExactAny    = "exact-any"
	StrategyExactHandle = "exact-handle"
	StrategyContainsAny = "contains-any"
)

// DefaultStrategies runs from strictest to loosest. The substring pass trades
// precision for recall and may return an over-broad match.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: StrategyExactAny,
			Find: func(ctx context.Context, s Store, h string) (*handle.Profile, error) {
				return s.FindByHandleOrUsername(ctx, h)
			},
		},
		{
			Name: StrategyExactHandle,
			Find: func(ctx context.Context, s Store, h string) (*handle.Profile, error) {
				return s.FindByHandle(ctx, h)
			},
		},
		{
			Name: StrategyContainsAny,
			Find: func(ctx context.Context, s Store, h string) (*handle.Profile, error) {
				return s.FindContaining(ctx, h)
			},
		},
	}
}
