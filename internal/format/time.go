// Package format renders timestamps the way the user configured them.
package format

import (
	"strings"
	"time"

	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/domain"
)

// Formatter holds the layouts derived from display_date and display_time.
type Formatter struct {
	date      string
	dateShort string
	clock     string
	clockFull string
}

// Default reads display_date and display_time from the config file.
func Default() Formatter {
	values, err := config.GetAll()
	if err != nil {
		values = nil
	}
	return New(values)
}

// New builds a Formatter from raw config values. Missing keys use their
// defaults.
func New(values map[string]string) Formatter {
	get := func(key string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		d, _ := domain.GetDefaultValue(key)
		return d
	}
	date, short := dateLayouts(get("display_date"))
	clock, full := clockLayouts(get("display_time"))
	return Formatter{date: date, dateShort: short, clock: clock, clockFull: full}
}

// DateTime formats date and time, e.g. "2024-01-23 15:04".
func (f Formatter) DateTime(t time.Time) string { return f.Date(t) + " " + f.Time(t) }

// DateTimeShort drops the year, e.g. "01-23 15:04".
func (f Formatter) DateTimeShort(t time.Time) string { return f.DateShort(t) + " " + f.Time(t) }

// Full includes seconds, e.g. "2024-01-23 15:04:05".
func (f Formatter) Full(t time.Time) string { return f.Date(t) + " " + t.Format(f.clockFull) }

func (f Formatter) Date(t time.Time) string      { return t.Format(f.date) }
func (f Formatter) DateShort(t time.Time) string { return t.Format(f.dateShort) }
func (f Formatter) Time(t time.Time) string      { return t.Format(f.clock) }

func dateLayouts(display string) (string, string) {
	switch display {
	case "mm/dd/yyyy":
		return "01/02/2006", "01/02"
	case "yyyy-mm-dd":
		return "2006-01-02", "01-02"
	case "dd/mm/yyyy":
		return "02/01/2006", "02/01"
	}

	// anything else is a Go layout; strip the year for the short form
	short := display
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		short = "Jan 02"
	}
	return display, short
}

func clockLayouts(display string) (string, string) {
	if display == "12h" {
		return "3:04 PM", "3:04:05 PM"
	}
	return "15:04", "15:04:05"
}
