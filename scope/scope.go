package scope

import (
	"errors"
	"sort"
)

// ErrEmptyScope is returned by Normalize when a scope string is empty.
var ErrEmptyScope = errors.New("scope must not be empty")

// Authorize reports whether required is a subset of granted, comparing
// scopes as exact strings. An empty required set always authorizes.
func Authorize(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(granted) == 0 {
		return false
	}

	held := make(map[string]struct{}, len(granted))
	for _, s := range granted {
		held[s] = struct{}{}
	}
	for _, s := range required {
		if _, ok := held[s]; !ok {
			return false
		}
	}
	return true
}

// Normalize canonicalizes a scope list into a set: duplicates collapsed,
// order fixed by sorting. Order never carries meaning. A nil or empty input
// yields nil; an empty scope string is an error.
func Normalize(scopes []string) ([]string, error) {
	if len(scopes) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if s == "" {
			return nil, ErrEmptyScope
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	sort.Strings(out)
	return out, nil
}

// Checker is a pre-bound authorization gate over a granted scope set.
type Checker func(granted []string) bool

// Require builds a Checker demanding every one of the given scopes. The
// checker is safe to share and reuse across requests.
func Require(required ...string) Checker {
	bound := append([]string(nil), required...)
	return func(granted []string) bool {
		return Authorize(granted, bound)
	}
}
