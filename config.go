package lemonade

import (
	"io"
	"os"

	jww "github.com/spf13/jwalterweatherman"
)

const (
	defaultName = "Gowtham"
	defaultAge  = 25
)

type Config struct {
	// Out receives the program lines. Defaults to os.Stdout.
	Out io.Writer

	// Record is the record to round trip. nil means DefaultRecord.
	Record *Record

	Log *jww.Notepad
}

// DefaultRecord is the record used when Config.Record is nil.
func DefaultRecord() Record {
	return NewRecord(defaultName, defaultAge)
}

// DiscardLog returns a notepad that drops everything.
func DiscardLog() *jww.Notepad {
	return jww.NewNotepad(jww.LevelFatal, jww.LevelFatal, io.Discard, io.Discard, "", 0)
}

func (cfg *Config) applyDefaults() {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	if cfg.Record == nil {
		r := DefaultRecord()
		cfg.Record = &r
	}

	if cfg.Log == nil {
		cfg.Log = DiscardLog()
	}
}
