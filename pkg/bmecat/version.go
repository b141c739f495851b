package bmecat

import (
	"fmt"
	"strings"
)

// Version identifies a BMECat schema dialect.
type Version int

const (
	// Version12 is BMECat 1.2 (ARTICLE based).
	Version12 Version = iota
	// Version2005 is BMECat 2005 (PRODUCT based).
	Version2005
)

func (v Version) String() string {
	if v == Version2005 {
		return "2005"
	}
	return "1.2"
}

// Namespace returns the default namespace URI for the dialect.
func (v Version) Namespace() string {
	if v == Version2005 {
		return Namespace2005
	}
	return Namespace12
}

// ClassifyVersion maps a root version attribute to a dialect. Anything that
// does not mention 2005, including an empty value, is treated as 1.2.
func ClassifyVersion(attr string) Version {
	if strings.Contains(attr, "2005") {
		return Version2005
	}
	return Version12
}

// ParseVersion strictly parses an explicitly requested version.
func ParseVersion(s string) (Version, error) {
	switch strings.TrimSpace(s) {
	case "1.2":
		return Version12, nil
	case "2005":
		return Version2005, nil
	}
	return Version12, fmt.Errorf("version %q: %w", s, ErrUnsupportedVersion)
}
