package workbook

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the longest sheet name Excel accepts, in characters.
const MaxSheetNameLength = 31

const invalidSheetNameChars = `:\/?*[]`

// SanitizeSheetName rewrites a name so Excel accepts it: forbidden characters
// become '_', surrounding apostrophes are dropped and the result is cut to
// MaxSheetNameLength characters.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetNameChars, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if strings.TrimSpace(name) == "" {
		name = "Sheet"
	}
	return truncateRunes(name, MaxSheetNameLength)
}

// NameSet assigns unique sheet names. Names compare case-insensitively,
// as they do in Excel.
type NameSet struct {
	taken    map[string]struct{}
	reserved map[string]string
}

// NewNameSet returns a NameSet already holding the given names.
func NewNameSet(existing ...string) *NameSet {
	s := &NameSet{
		taken:    make(map[string]struct{}),
		reserved: make(map[string]string),
	}
	for _, name := range existing {
		s.taken[strings.ToLower(name)] = struct{}{}
	}
	return s
}

// Reserve blocks name for every Assign call except one asking for exactly name.
func (s *NameSet) Reserve(name string) {
	name = SanitizeSheetName(name)
	s.reserved[strings.ToLower(name)] = name
}

// Assign returns the name a new sheet called want receives and marks it taken.
// Collisions are resolved by appending " (2)", " (3)", ...
func (s *NameSet) Assign(want string) string {
	base := SanitizeSheetName(want)
	key := strings.ToLower(base)

	if r, ok := s.reserved[key]; ok && r == base {
		delete(s.reserved, key)
		if _, taken := s.taken[key]; !taken {
			s.taken[key] = struct{}{}
			return base
		}
	}
	if s.free(key) {
		s.taken[key] = struct{}{}
		return base
	}

	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate := truncateRunes(base, MaxSheetNameLength-len(suffix)) + suffix
		if k := strings.ToLower(candidate); s.free(k) {
			s.taken[k] = struct{}{}
			return candidate
		}
	}
}

// Contains reports whether name is taken.
func (s *NameSet) Contains(name string) bool {
	_, ok := s.taken[strings.ToLower(name)]
	return ok
}

func (s *NameSet) free(key string) bool {
	if _, ok := s.taken[key]; ok {
		return false
	}
	_, ok := s.reserved[key]
	return !ok
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
