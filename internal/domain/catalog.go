package domain

// PathRow is one catalog row as supplied by the row source: a
// slash-delimited classification path plus the (domain, sub_domain) pair it
// is filed under. EntityID is nil when no entity is attached to the path.
//
// Rows are read-only snapshots; the tree builder never mutates them.
type PathRow struct {
	Path      string
	Domain    string
	SubDomain string
	EntityID  *int64
}

// Scope identifies the filter dimension of a tree query. The zero value is
// the "all domains" scope used by the domains summary tree; a non-zero
// scope names a specific (domain, sub_domain) pair.
type Scope struct {
	Domain    string
	SubDomain string
}

// ScopeAll is the sentinel scope covering every domain.
var ScopeAll = Scope{}

// All reports whether the scope covers all domains.
func (s Scope) All() bool {
	return s.Domain == "" && s.SubDomain == ""
}

// Key returns the stable string encoding of the scope used as the cache
// map key: "*" for all domains, otherwise the pair joined by a unit
// separator. The separator keeps the encoding injective over valid pairs.
func (s Scope) Key() string {
	if s.All() {
		return "*"
	}
	return s.Domain + "\x1f" + s.SubDomain
}

// PrefixLen is the number of leading path segments every catalog row in
// this scope shares. Scoped rows always start with domain/sub_domain; the
// synthetic rows of the all-domains scope have no shared prefix.
func (s Scope) PrefixLen() int {
	if s.All() {
		return 0
	}
	return 2
}

func (s Scope) String() string {
	if s.All() {
		return "*"
	}
	return s.Domain + "/" + s.SubDomain
}
