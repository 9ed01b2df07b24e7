package questions

import (
	"errors"
	"strconv"
	"strings"
)

// ErrSectionNotFound is returned for section identifiers outside 1..9.
var ErrSectionNotFound = errors.New("section not found")

// SectionNumber identifies one of the nine exam subject areas.
type SectionNumber int

const (
	SectionRegulations SectionNumber = iota + 1
	SectionAerodynamics
	SectionFirstAid
	SectionPhysiology
	SectionMeteorology
	SectionInstruments
	SectionPiloting
	SectionMaterials
	SectionSafety
)

// SectionCount is the number of exam sections.
const SectionCount = 9

var sectionNames = map[SectionNumber]string{
	SectionRegulations:  "NORMATIVA E LEGISLAZIONE",
	SectionAerodynamics: "AERODINAMICA",
	SectionFirstAid:     "PRONTO SOCCORSO",
	SectionPhysiology:   "FISIOPATOLOGIA DEL VOLO",
	SectionMeteorology:  "METEOROLOGIA E AEROLOGIA",
	SectionInstruments:  "STRUMENTI",
	SectionPiloting:     "TECNICA DI PILOTAGGIO",
	SectionMaterials:    "MATERIALI",
	SectionSafety:       "SICUREZZA DEL VOLO",
}

// Valid reports whether n is one of the nine sections.
func (n SectionNumber) Valid() bool {
	return n > 0 && n <= SectionCount
}

// Name returns the section label as it appears in the question bank.
func (n SectionNumber) Name() string {
	return sectionNames[n]
}

// Key returns the identifier used for the section in persisted state.
func (n SectionNumber) Key() string {
	return strconv.Itoa(int(n))
}

func (n SectionNumber) String() string {
	if !n.Valid() {
		return "section(" + strconv.Itoa(int(n)) + ")"
	}
	return n.Key() + " " + n.Name()
}

// ParseSection parses a section identifier. Only integers strictly between
// 0 and 10 are accepted.
func ParseSection(s string) (SectionNumber, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrSectionNotFound
	}
	n := SectionNumber(v)
	if !n.Valid() {
		return 0, ErrSectionNotFound
	}
	return n, nil
}

// AllSections returns the sections in order.
func AllSections() []SectionNumber {
	out := make([]SectionNumber, 0, SectionCount)
	for n := SectionNumber(1); n <= SectionCount; n++ {
		out = append(out, n)
	}
	return out
}
