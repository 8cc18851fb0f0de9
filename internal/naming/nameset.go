package naming

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// NameSet holds the names that are already taken. Membership is
// case-insensitive and the set only ever grows.
//
// A NameSet is not safe for concurrent use.
type NameSet struct {
	names   []string
	members map[string]struct{}
	// lowercased base name -> highest version among members with that base
	highest map[string]int
}

func NewNameSet(names []string) *NameSet {
	s := &NameSet{
		names:   make([]string, 0, len(names)),
		members: make(map[string]struct{}, len(names)),
		highest: make(map[string]int),
	}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func fold(name string) string {
	return strings.ToLower(name)
}

// Add marks name as taken. Members whose marker overflows still count for
// membership but do not take part in the highest version lookup.
func (s *NameSet) Add(name string) {
	s.names = append(s.names, name)
	s.members[fold(name)] = struct{}{}

	p, err := ParseName(name)
	if err != nil || !p.HasVersion {
		return
	}
	key := fold(p.BaseName)
	if v, ok := s.highest[key]; !ok || p.Version > v {
		s.highest[key] = p.Version
	}
}

func (s *NameSet) Contains(name string) bool {
	_, ok := s.members[fold(name)]
	return ok
}

// HighestVersion returns the largest version used by any member whose base
// name equals base, ignoring case. It returns 0 when there is none.
func (s *NameSet) HighestVersion(base string) int {
	return s.highest[fold(base)]
}

func (s *NameSet) Len() int {
	return len(s.names)
}

// Names returns the members in insertion order.
func (s *NameSet) Names() []string {
	return slices.Clone(s.names)
}

// Assign returns the name p should be stored under. A name that is not yet
// taken is returned unchanged. Otherwise the version is bumped past both
// p's own version and the highest version already used for its base, and
// further until the candidate is free. The set is not modified.
func (s *NameSet) Assign(p ParsedName) (string, error) {
	if !s.Contains(p.Original) {
		return p.Original, nil
	}

	current := p.Version
	if h := s.HighestVersion(p.BaseName); h > current {
		current = h
	}
	for {
		if current == math.MaxInt {
			return "", &VersionOverflowError{Input: p.Original}
		}
		current++
		candidate := p.WithVersion(current)
		if !s.Contains(candidate) {
			return candidate, nil
		}
	}
}

// AssignNextVersion resolves p against existing. See [NameSet.Assign].
func AssignNextVersion(p ParsedName, existing []string) (string, error) {
	return NewNameSet(existing).Assign(p)
}
