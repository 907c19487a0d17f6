package readmodel

import (
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"
)

// Strategy names a way of loading order trees.
type Strategy string

const (
	// StrategyJoin loads roots and children in one joined query. Not pageable.
	StrategyJoin Strategy = "join"
	// StrategyBatch loads a page of roots, then their lines in IN-list batches.
	StrategyBatch Strategy = "batch"
	// StrategyFlat runs one query returning one row per line and groups in memory.
	StrategyFlat Strategy = "flat"
	// StrategyDTO queries roots as views, then lines per root.
	StrategyDTO Strategy = "dto"
	// StrategyDTOBatch queries roots as views, then all lines with a single IN query.
	StrategyDTOBatch Strategy = "dto-batch"
)

// SimpleStrategy names a way of loading simple (to-one) order views.
type SimpleStrategy string

const (
	// SimpleStrategyFetch loads entities with member and delivery joined.
	SimpleStrategyFetch SimpleStrategy = "fetch"
	// SimpleStrategyDTO selects the view columns directly.
	SimpleStrategyDTO SimpleStrategy = "dto"
)

// Page bounds a root query. A zero Limit means no paging.
type Page struct {
	Offset int
	Limit  int
}

// IsZero reports whether no paging was requested.
func (p Page) IsZero() bool {
	return p.Offset == 0 && p.Limit == 0
}

// ParseStrategy resolves a strategy name, defaulting to StrategyBatch.
func ParseStrategy(raw string) (Strategy, error) {
	if raw == "" {
		return StrategyBatch, nil
	}

	switch s := Strategy(raw); s {
	case StrategyJoin, StrategyBatch, StrategyFlat, StrategyDTO, StrategyDTOBatch:
		return s, nil
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown strategy %q", raw)
	}
}

// ParseSimpleStrategy resolves a simple strategy name, defaulting to SimpleStrategyFetch.
func ParseSimpleStrategy(raw string) (SimpleStrategy, error) {
	if raw == "" {
		return SimpleStrategyFetch, nil
	}

	switch s := SimpleStrategy(raw); s {
	case SimpleStrategyFetch, SimpleStrategyDTO:
		return s, nil
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown simple strategy %q", raw)
	}
}

// Pageable reports whether the strategy honours offset and limit.
func (s Strategy) Pageable() bool {
	return s != StrategyJoin
}
