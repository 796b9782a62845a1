package security

import (
	"net/http"
	"strings"
)

// Requirement is what a route demands from the caller.
type Requirement int

const (
	// Authenticated routes need an established identity.
	Authenticated Requirement = iota
	// Public routes accept anonymous callers.
	Public
)

func (r Requirement) String() string {
	if r == Public {
		return "public"
	}
	return "authenticated"
}

// AnyMethod matches every HTTP method.
const AnyMethod = "*"

// Rule maps a method and a set of path patterns to a requirement.
//
// A pattern is either an exact path or a prefix followed by "/**", which
// matches the prefix itself and everything below it ("/**" alone matches
// every path).
type Rule struct {
	Methods     []string
	Patterns    []string
	Requirement Requirement
}

// Matches reports whether the rule applies to the request line.
func (r Rule) Matches(method, path string) bool {
	if !r.matchesMethod(method) {
		return false
	}
	for _, p := range r.Patterns {
		if matchPattern(p, path) {
			return true
		}
	}
	return false
}

func (r Rule) matchesMethod(method string) bool {
	for _, m := range r.Methods {
		if m == AnyMethod || strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	path = normalizePath(path)
	prefix, wildcard := strings.CutSuffix(pattern, "/**")
	if !wildcard {
		return path == normalizePath(pattern)
	}
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// Policy is an ordered rule table evaluated top-down; the first matching
// rule wins and unmatched requests fall back to Default.
type Policy struct {
	Rules   []Rule
	Default Requirement
}

// Evaluate returns the requirement for the request line.
func (p Policy) Evaluate(method, path string) Requirement {
	for _, r := range p.Rules {
		if r.Matches(method, path) {
			return r.Requirement
		}
	}
	return p.Default
}

// DefaultPolicy is the rule table of the blog API.
// POST /auth/** and the GET read endpoints are public, everything else
// requires authentication. POST /categories is therefore protected even
// though GET /categories is not.
func DefaultPolicy() Policy {
	return Policy{
		Rules: []Rule{
			{Methods: []string{http.MethodPost}, Patterns: []string{"/auth/**"}, Requirement: Public},
			{Methods: []string{http.MethodGet}, Patterns: []string{"/posts/**", "/categories/**", "/tags/**"}, Requirement: Public},
			{Methods: []string{http.MethodGet, http.MethodHead}, Patterns: []string{"/healthz"}, Requirement: Public},
			{Methods: []string{http.MethodOptions}, Patterns: []string{"/**"}, Requirement: Public},
		},
		Default: Authenticated,
	}
}
