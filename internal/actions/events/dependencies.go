package events

import (
	"fmt"
	"time"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/format"
	"github.com/footprint-tools/drawer/internal/paths"
	"github.com/footprint-tools/drawer/internal/store"
)

// Journal is the part of the store the events commands read and clear.
type Journal interface {
	List(f store.Filter) ([]events.Event, error)
	Count(f store.Filter) (int, error)
	Clear() (int64, error)
	Close() error
}

type Deps struct {
	OpenJournal func() (Journal, error)
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	Now         func() time.Time
	FormatTime  func(time.Time) string
}

func DefaultDeps() Deps {
	return Deps{
		OpenJournal: func() (Journal, error) { return store.New(paths.JournalPath()) },
		Printf:      fmt.Printf,
		Println:     fmt.Println,
		Now:         time.Now,
		FormatTime:  format.Default().Full,
	}
}
