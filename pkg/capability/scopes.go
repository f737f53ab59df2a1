// Package capability manages workspace capability tokens: scoped,
// attenuable, optionally-delegated grants of authority. Delegation forms a
// graph of edges with bounded depth; child scopes can only narrow the
// parent's.
package capability

import (
	"sort"

	"github.com/missionloop/groundcontrol/pkg/models"
)

// Canonicalize returns the compact persisted shape of a scope set: every
// list sorted and deduplicated, empty lists dropped, an empty data_access
// object dropped.
func Canonicalize(s models.ScopeSet) models.ScopeSet {
	out := models.ScopeSet{
		Rooms:         canonList(s.Rooms),
		Tools:         canonList(s.Tools),
		EgressDomains: canonList(s.EgressDomains),
		ActionTypes:   canonList(s.ActionTypes),
	}
	if s.DataAccess != nil {
		da := models.DataAccess{
			Read:  canonList(s.DataAccess.Read),
			Write: canonList(s.DataAccess.Write),
		}
		if da.Read != nil || da.Write != nil {
			out.DataAccess = &da
		}
	}
	return out
}

// Intersect computes the effective scopes of a delegation: for each key the
// child requested, set-intersection with the parent's value; keys absent
// from the parent drop out entirely. The result is canonical.
func Intersect(parent, requested models.ScopeSet) models.ScopeSet {
	out := models.ScopeSet{
		Rooms:         intersectLists(parent.Rooms, requested.Rooms),
		Tools:         intersectLists(parent.Tools, requested.Tools),
		EgressDomains: intersectLists(parent.EgressDomains, requested.EgressDomains),
		ActionTypes:   intersectLists(parent.ActionTypes, requested.ActionTypes),
	}
	if parent.DataAccess != nil && requested.DataAccess != nil {
		da := models.DataAccess{
			Read:  intersectLists(parent.DataAccess.Read, requested.DataAccess.Read),
			Write: intersectLists(parent.DataAccess.Write, requested.DataAccess.Write),
		}
		if da.Read != nil || da.Write != nil {
			out.DataAccess = &da
		}
	}
	return out
}

// Covers reports whether the scope set permits a member of a dimension,
// honoring the wildcard.
func Covers(scope []string, member string) bool {
	for _, s := range scope {
		if s == models.Wildcard || s == member {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the canonical scope set permits nothing.
func IsEmpty(s models.ScopeSet) bool {
	return len(s.Rooms) == 0 && len(s.Tools) == 0 &&
		len(s.EgressDomains) == 0 && len(s.ActionTypes) == 0 &&
		(s.DataAccess == nil || (len(s.DataAccess.Read) == 0 && len(s.DataAccess.Write) == 0))
}

func canonList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// intersectLists intersects two scope lists; the wildcard intersects as
// identity. An empty result is nil so the key drops from the canonical form.
func intersectLists(parent, requested []string) []string {
	if len(parent) == 0 || len(requested) == 0 {
		return nil
	}
	parentAll := Covers(parent, models.Wildcard)
	requestedAll := Covers(requested, models.Wildcard)
	switch {
	case parentAll && requestedAll:
		return []string{models.Wildcard}
	case parentAll:
		return canonList(requested)
	case requestedAll:
		return canonList(parent)
	}

	inParent := make(map[string]struct{}, len(parent))
	for _, v := range parent {
		inParent[v] = struct{}{}
	}
	var out []string
	for _, v := range requested {
		if _, ok := inParent[v]; ok {
			out = append(out, v)
		}
	}
	return canonList(out)
}
