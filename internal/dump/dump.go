// Package dump serialises an enumerated state space as TOML.
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lox/lcr/internal/fileutil"
	"github.com/lox/lcr/internal/lcr"
)

// Document is the on-disk shape of a state space.
type Document struct {
	Players  int           `toml:"players"`
	Strategy string        `toml:"strategy"`
	Totals   []TotalRecord `toml:"total"`
	States   []StateRecord `toml:"state"`
}

// TotalRecord summarises one chip total.
type TotalRecord struct {
	Chips         int `toml:"chips"`
	Distributions int `toml:"distributions"`
	States        int `toml:"states"`
}

// StateRecord is a single state; Chips[i] is the holding of player i.
type StateRecord struct {
	Turn  int   `toml:"turn"`
	Chips []int `toml:"chips"`
}

// NewDocument converts a state space into its serialisable form.
func NewDocument(space *lcr.StateSpace, strategy lcr.Strategy) *Document {
	doc := &Document{
		Players:  len(space.Players),
		Strategy: string(strategy),
		Totals:   make([]TotalRecord, len(space.Tallies)),
		States:   make([]StateRecord, len(space.States)),
	}
	for i, t := range space.Tallies {
		doc.Totals[i] = TotalRecord{Chips: t.Total, Distributions: t.Distributions, States: t.States}
	}
	for i, s := range space.States {
		doc.States[i] = StateRecord{Turn: int(s.Turn), Chips: []int(s.Chips)}
	}
	return doc
}

// Encode writes the state space to w.
func Encode(w io.Writer, space *lcr.StateSpace, strategy lcr.Strategy) error {
	if space == nil {
		return fmt.Errorf("dump: state space is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(NewDocument(space, strategy))
}

// WriteFile writes the state space to filename, replacing it atomically.
func WriteFile(filename string, space *lcr.StateSpace, strategy lcr.Strategy) error {
	err := fileutil.WriteAtomic(filename, 0644, func(w io.Writer) error {
		return Encode(w, space, strategy)
	})
	if err != nil {
		return fmt.Errorf("writing state dump %s: %w", filename, err)
	}
	return nil
}

// ReadFile decodes a dump previously written by WriteFile.
func ReadFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var doc Document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return &doc, nil
}
