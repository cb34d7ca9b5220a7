// Package pins holds the portfolio pinboard: the fixed catalog of pins
// and the category filter applied to it.
package pins

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownType = errors.New("unknown pin type")
	ErrUnknownPin  = errors.New("unknown pin")
)

type Type string

const (
	All         Type = "ALL"
	Project     Type = "PROJECT"
	Experience  Type = "EXPERIENCE"
	Skill       Type = "SKILL"
	Achievement Type = "ACHIEVEMENT"
	Resume      Type = "RESUME"
	Blog        Type = "BLOG"
	Sticker     Type = "STICKER"
)

// Types lists every concrete pin type.
var Types = []Type{Project, Experience, Skill, Achievement, Resume, Blog, Sticker}

// FilterTypes are the categories offered by the pinboard filter bar, in
// display order. All comes first.
var FilterTypes = []Type{All, Project, Experience, Achievement, Skill, Resume}

// ParseType accepts a type name in any case. An empty name means All.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if t == "" || t == All {
		return All, nil
	}
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Plural is the filter bar label, e.g. "Projects".
func (t Type) Plural() string {
	if t == All {
		return "View All"
	}
	s := strings.ToLower(string(t))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + "s"
}

type Pin struct {
	ID          string
	Type        Type
	Title       string
	Description string
	Tags        []string
	GitHubURL   string
	LiveURL     string
	DemoURL     string
}

// Filter returns the catalog pins of type t in catalog order. All returns
// the whole catalog.
func Filter(t Type) []Pin {
	out := make([]Pin, 0, len(catalog))
	for _, p := range catalog {
		if t == All || p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds a pin by id.
func Lookup(id string) (Pin, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Pin{}, fmt.Errorf("%w: %q", ErrUnknownPin, id)
}

// Known reports whether id names a catalog pin.
func Known(id string) bool {
	_, err := Lookup(id)
	return err == nil
}
