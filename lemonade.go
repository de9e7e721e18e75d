// Package lemonade round trips a small person record through JSON and keeps
// an immutable table of country names.
package lemonade

import (
	"fmt"

	"github.com/denismitr/lemonade/internal/textutil"
	"github.com/pkg/errors"
)

const (
	serializedLabel = "Serialized JSON: "
	parsedLabel     = "Parsed back: "
	notBlankLabel   = "Name is not blank: "
	countriesLabel  = "Countries: "
)

// Run executes the demo once and writes its lines to cfg.Out. The first
// error aborts the run.
func Run(cfg Config) error {
	cfg.applyDefaults()
	log := cfg.Log

	rec := cfg.Record.Clone()
	log.DEBUG.Printf("record built: %+v", rec)

	b, err := rec.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not serialize record")
	}

	if _, err := fmt.Fprintf(cfg.Out, "%s%s\n", serializedLabel, b); err != nil {
		return errors.Wrap(err, "could not write output")
	}

	doc, err := NewDocument(b)
	if err != nil {
		return errors.Wrap(err, "could not deserialize record")
	}
	log.DEBUG.Printf("document checksum %x", doc.Checksum())

	parsed, err := doc.M()
	if err != nil {
		return errors.Wrap(err, "could not deserialize record")
	}

	sum, err := VerifyRoundTrip(parsed)
	if err != nil {
		return err
	}
	log.DEBUG.Printf("round trip stable, checksum %x", sum)

	if _, err := fmt.Fprintf(cfg.Out, "%s%s\n", parsedLabel, parsed); err != nil {
		return errors.Wrap(err, "could not write output")
	}

	name, err := parsed.GetString(NameKey)
	if err != nil {
		return err
	}

	if upper, ok := textutil.UpperIfNotBlank(name); ok {
		if _, err := fmt.Fprintf(cfg.Out, "%s%s\n", notBlankLabel, upper); err != nil {
			return errors.Wrap(err, "could not write output")
		}
	} else {
		log.INFO.Printf("name %q is blank, skipping", name)
	}

	countries := Countries()
	log.DEBUG.Printf("country table built with %d entries", countries.Len())

	if _, err := fmt.Fprintf(cfg.Out, "%s%s\n", countriesLabel, countries); err != nil {
		return errors.Wrap(err, "could not write output")
	}

	return nil
}
