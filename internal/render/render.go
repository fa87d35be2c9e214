package render

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/shoresign/shoresign/internal/display"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Carousel order. Each page redirects to the next, closing the loop.
var pages = []struct {
	File string
	Next string
}{
	{"weather.html", "tides.html"},
	{"tides.html", "moon.html"},
	{"moon.html", "sun.html"},
	{"sun.html", "weather.html"},
}

// PageRenderer writes the four carousel pages into the output directory.
type PageRenderer struct {
	outDir  string
	seconds int
	tmpl    *template.Template
}

// New parses the embedded templates.
func New(outDir string, pageSeconds int) (*PageRenderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"compass":   compass,
		"clockTime": clockTime,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &PageRenderer{outDir: outDir, seconds: pageSeconds, tmpl: tmpl}, nil
}

type pageData struct {
	Next        string
	Seconds     int
	LastUpdated string
	Date        string

	Weather   *display.WeatherRecord
	Tides     *display.TideRecord
	Astronomy *display.AstronomyRecord
}

// RenderAll writes every page. The document is expected to be fully
// resolved: absent entries replaced by placeholders before rendering.
func (r *PageRenderer) RenderAll(doc display.Document, lastUpdated, date string) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, p := range pages {
		data := pageData{
			Next:        p.Next,
			Seconds:     r.seconds,
			LastUpdated: lastUpdated,
			Date:        date,
			Weather:     doc.Weather,
			Tides:       doc.Tides,
			Astronomy:   doc.Astronomy,
		}

		out, err := os.Create(filepath.Join(r.outDir, p.File))
		if err != nil {
			return fmt.Errorf("create %s: %w", p.File, err)
		}
		if err := r.tmpl.ExecuteTemplate(out, p.File, data); err != nil {
			out.Close()
			return fmt.Errorf("render %s: %w", p.File, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", p.File, err)
		}
	}
	return nil
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func compass(deg int) string {
	idx := int(math.Round(float64(deg)/22.5)) % 16
	return compassPoints[idx]
}

func clockTime(t time.Time) string {
	return t.Format("15:04")
}
