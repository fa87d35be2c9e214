package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoresign/shoresign/internal/clock"
	"github.com/shoresign/shoresign/internal/logger"
)

// TimeSource yields the local time snapshot a run is evaluated against.
// *clock.Clock satisfies it.
type TimeSource interface {
	Now() clock.Snapshot
}

// Service runs one refresh cycle: load the cache, decide per source whether
// to call upstream, merge results, persist, render. It exclusively owns the
// in-memory document for the duration of a run; non-overlapping runs are
// the external trigger's responsibility.
type Service struct {
	clock     TimeSource
	store     Store
	weather   WeatherFetcher
	astronomy AstronomyFetcher
	tides     TideFetcher
	renderer  Renderer

	forceAstronomy bool
	forceTides     bool
}

// Options carries the orchestrator's construction-time knobs.
type Options struct {
	ForceAstronomy bool
	ForceTides     bool
}

// NewService wires the orchestrator.
func NewService(ck TimeSource, store Store, weather WeatherFetcher, astronomy AstronomyFetcher, tides TideFetcher, renderer Renderer, opts Options) *Service {
	return &Service{
		clock:          ck,
		store:          store,
		weather:        weather,
		astronomy:      astronomy,
		tides:          tides,
		renderer:       renderer,
		forceAstronomy: opts.ForceAstronomy,
		forceTides:     opts.ForceTides,
	}
}

// Run executes one complete cycle. Fetch failures degrade to the previous
// cached entry and never abort the run; a cache write failure does, since
// silently dropping persisted state would desynchronize every later policy
// decision.
func (s *Service) Run(ctx context.Context) error {
	log := logger.WithComponent("display")

	doc := s.store.Load()
	now := s.clock.Now()

	if ShouldFetchWeather(now, doc.Weather) {
		rec, err := s.weather.Fetch(ctx)
		switch {
		case err == nil:
			doc.Weather = rec
			log.WithField("icon", rec.Icon).Debug("weather refreshed")
		case errors.Is(err, ErrUnavailable):
			log.Debug("weather source unavailable; keeping cached entry")
		default:
			log.WithError(err).Warn("weather fetch failed; keeping cached entry")
		}
	}

	if ShouldFetchAstronomy(now, doc.Astronomy, s.forceAstronomy) {
		rec, err := s.astronomy.Fetch(ctx)
		switch {
		case err == nil:
			doc.Astronomy = rec
			log.WithField("day", rec.Day).Debug("astronomy refreshed")
		case errors.Is(err, ErrUnavailable):
			log.Debug("astronomy source unavailable; keeping cached entry")
		default:
			log.WithError(err).Warn("astronomy fetch failed; keeping cached entry")
		}
	}

	if ShouldFetchTides(now, doc.Tides, s.forceTides) {
		rec, err := s.tides.Fetch(ctx)
		switch {
		case err == nil:
			doc.Tides = rec
			log.WithField("today", len(rec.Today)).WithField("tomorrow", len(rec.Tomorrow)).Debug("tides refreshed")
		case errors.Is(err, ErrUnavailable):
			log.Debug("tide source unavailable; keeping cached entry")
		default:
			log.WithError(err).Warn("tide fetch failed; keeping cached entry")
		}
	}

	s.applyPlaceholders(&doc, now)

	// Always persist, even when nothing changed: the file on disk must
	// reflect the in-memory store after every run.
	if err := s.store.Save(doc); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	if s.renderer != nil {
		lastUpdated := now.Time.Format("15:04")
		date := now.Time.Format("Monday, 2 January 2006")
		if err := s.renderer.RenderAll(doc, lastUpdated, date); err != nil {
			return fmt.Errorf("render pages: %w", err)
		}
	}

	return nil
}

// applyPlaceholders fills fixed defaults for any source still absent after
// all fetch attempts, so the rendered pages are always well-formed.
func (s *Service) applyPlaceholders(doc *Document, now clock.Snapshot) {
	if doc.Weather == nil {
		doc.Weather = PlaceholderWeather(now.Time)
	}
	if doc.Astronomy == nil {
		doc.Astronomy = PlaceholderAstronomy()
	}
	if doc.Tides == nil {
		doc.Tides = PlaceholderTides()
	}
}
