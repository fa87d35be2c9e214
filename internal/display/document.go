package display

import "encoding/json"

// Document is the persisted cache root: one optional entry per source. A
// nil entry means "absent" — never fetched, or dropped on a failed read.
type Document struct {
	Weather   *WeatherRecord   `json:"weather"`
	Tides     *TideRecord      `json:"tides"`
	Astronomy *AstronomyRecord `json:"astronomy"`
}

// UnmarshalJSON accepts the legacy "tides2d" key as an alias for "tides"
// so caches written by the earlier layout still load.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	aux := struct {
		*plain
		LegacyTides *TideRecord `json:"tides2d"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.Tides == nil {
		d.Tides = aux.LegacyTides
	}
	return nil
}
