package clock

import (
	"fmt"
	"time"
)

// DayFormat is the calendar-day stamp layout used throughout the cache.
const DayFormat = "2006-01-02"

// Active display hours, inclusive. Outside this window the weather source
// is not refreshed and the last known value keeps being shown.
const (
	activeStartHour = 6
	activeEndHour   = 22
)

// Snapshot is a value view of the current local time, taken once per run so
// every policy decision within a run sees the same instant.
type Snapshot struct {
	Time time.Time
	Day  string // local calendar day, DayFormat
	Hour int    // local hour, 0-23
}

// ActiveWindow reports whether the snapshot falls inside the display's
// active hours.
func (s Snapshot) ActiveWindow() bool {
	return s.Hour >= activeStartHour && s.Hour <= activeEndHour
}

// Clock resolves wall-clock time in a fixed civil time zone. The zone is
// DST-aware; conversions must never be done with raw UTC offsets.
type Clock struct {
	loc *time.Location
}

// New loads the named zone. An unresolvable zone is a configuration error
// and should abort startup.
func New(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &Clock{loc: loc}, nil
}

// Location returns the clock's zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current local snapshot.
func (c *Clock) Now() Snapshot {
	return c.At(time.Now())
}

// At converts an arbitrary instant into a local snapshot.
func (c *Clock) At(t time.Time) Snapshot {
	local := t.In(c.loc)
	return Snapshot{
		Time: local,
		Day:  local.Format(DayFormat),
		Hour: local.Hour(),
	}
}
