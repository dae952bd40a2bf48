// SPDX-License-Identifier: MIT

// Package modification describes the dynamic modifications a search may
// place on residues. Values are plain comparable records so that they can
// key a modcomb.Catalogue directly.
package modification

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyName indicates a modification without a name.
	ErrEmptyName = errors.New("modification: name must not be empty")
	// ErrBadResidue indicates a residue that is not one letter A–Z or '*'.
	ErrBadResidue = errors.New("modification: residue must be one letter A-Z or '*'")
	// ErrBadMass indicates a NaN or infinite mass delta.
	ErrBadMass = errors.New("modification: mass delta must be finite")
	// ErrDuplicate indicates two identical modifications in one Set.
	ErrDuplicate = errors.New("modification: duplicate modification")
	// ErrUnknownLocation indicates an unparsable Location.
	ErrUnknownLocation = errors.New("modification: unknown location")
)

// AnyResidue targets every residue.
const AnyResidue = "*"

// Location restricts where on a sequence a modification may sit.
type Location int

const (
	// Everywhere allows any position.
	Everywhere Location = iota
	// PeptideNTerm allows only the first residue of a peptide.
	PeptideNTerm
	// PeptideCTerm allows only the last residue of a peptide.
	PeptideCTerm
	// ProteinNTerm allows only the first residue of a protein.
	ProteinNTerm
	// ProteinCTerm allows only the last residue of a protein.
	ProteinCTerm
)

var locationNames = [...]string{
	Everywhere:   "everywhere",
	PeptideNTerm: "peptide-n-term",
	PeptideCTerm: "peptide-c-term",
	ProteinNTerm: "protein-n-term",
	ProteinCTerm: "protein-c-term",
}

func (l Location) String() string {
	if l < 0 || int(l) >= len(locationNames) {
		return fmt.Sprintf("Location(%d)", int(l))
	}
	return locationNames[l]
}

// ParseLocation accepts the String form, case-insensitively. An empty
// string means Everywhere.
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Everywhere, nil
	}
	for i, name := range locationNames {
		if s == name {
			return Location(i), nil
		}
	}

	return Everywhere, fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}

// MarshalYAML writes the location by name.
func (l Location) MarshalYAML() (any, error) {
	return l.String(), nil
}

// UnmarshalYAML reads a location name.
func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	loc, err := ParseLocation(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = loc

	return nil
}

// Modification is one kind of chemical alteration allowed by a search.
type Modification struct {
	Name      string   `yaml:"name"`
	MassDelta float64  `yaml:"massDelta"` // monoisotopic, Da
	Residue   string   `yaml:"residue"`   // one-letter code or AnyResidue
	Location  Location `yaml:"location"`
	Fixed     bool     `yaml:"fixed"`
}

// String renders "Name@Residue", with the location appended when it is
// not Everywhere.
func (m Modification) String() string {
	s := m.Name + "@" + m.Residue
	if m.Location != Everywhere {
		s += "(" + m.Location.String() + ")"
	}
	return s
}

// Validate checks a single modification.
func (m Modification) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Residue) != 1 || (m.Residue != AnyResidue && (m.Residue[0] < 'A' || m.Residue[0] > 'Z')) {
		return fmt.Errorf("%s: %w, got %q", m.Name, ErrBadResidue, m.Residue)
	}
	if math.IsNaN(m.MassDelta) || math.IsInf(m.MassDelta, 0) {
		return fmt.Errorf("%s: %w", m.Name, ErrBadMass)
	}
	if m.Location < Everywhere || m.Location > ProteinCTerm {
		return fmt.Errorf("%s: %w: %d", m.Name, ErrUnknownLocation, int(m.Location))
	}

	return nil
}

// Set is an ordered list of search modifications.
type Set []Modification

// Validate checks every member and rejects duplicates.
func (s Set) Validate() error {
	seen := make(map[Modification]int, len(s))
	for i, m := range s {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("modification %d: %w", i, err)
		}
		if j, dup := seen[m]; dup {
			return fmt.Errorf("modifications %d and %d: %w: %s", j, i, ErrDuplicate, m)
		}
		seen[m] = i
	}

	return nil
}

// Dynamic returns the variable modifications, in order. Only these take part
// in combinations; fixed ones apply to every matching residue.
func (s Set) Dynamic() []Modification {
	var out []Modification
	for _, m := range s {
		if !m.Fixed {
			out = append(out, m)
		}
	}
	return out
}

// MassDelta sums the mass shifts of mods.
func MassDelta(mods []Modification) float64 {
	total := 0.0
	for _, m := range mods {
		total += m.MassDelta
	}

	return total
}
