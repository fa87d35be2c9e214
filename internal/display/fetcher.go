package display

import (
	"context"
	"errors"
)

// ErrUnavailable marks a source that cannot be queried at all this cycle,
// typically because its credential is missing. It is handled like any other
// fetch failure (previous entry retained) but logged less loudly.
var ErrUnavailable = errors.New("source unavailable")

// WeatherFetcher adapts the upstream forecast API to a WeatherRecord.
type WeatherFetcher interface {
	Fetch(ctx context.Context) (*WeatherRecord, error)
}

// AstronomyFetcher adapts the upstream astronomy API to an AstronomyRecord.
type AstronomyFetcher interface {
	Fetch(ctx context.Context) (*AstronomyRecord, error)
}

// TideFetcher adapts the upstream tide API to a TideRecord. A day with
// genuinely no extrema yields an empty-but-present record, not an error, so
// the day stamp still advances.
type TideFetcher interface {
	Fetch(ctx context.Context) (*TideRecord, error)
}

// Store is the contract the persistent cache must satisfy.
type Store interface {
	Load() Document
	Save(doc Document) error
}

// Renderer produces the static output pages from a resolved document.
type Renderer interface {
	RenderAll(doc Document, lastUpdated string, date string) error
}
