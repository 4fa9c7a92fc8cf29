// Package tree materializes flat slash-delimited catalog paths into nested
// PathNode trees consumable by a UI tree widget.
package tree

import (
	"fmt"
	"strings"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// Warning records a non-fatal data-quality problem found while building a
// tree. The offending row is skipped and the build continues.
type Warning struct {
	Path   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (path %q)", w.Reason, w.Path)
}

// Result is the outcome of a build: the root-level nodes plus any
// data-quality warnings collected along the way.
type Result struct {
	Roots    []*domain.PathNode
	Warnings []Warning
}

// Build inserts each row's path into a prefix tree keyed by the cumulative
// path-so-far. skip is the number of leading segments shared by every row
// in the scope (2 for entity trees, where domain and sub_domain lead every
// catalog path; 0 for the domains summary tree); those segments stay part
// of the node keys but produce no nodes of their own.
//
// Children keep first-insertion order, so the output is deterministic for
// a given row order. The first entity id attached to a path wins; a
// differing later one is reported as a conflict warning. Duplicate
// identical rows are idempotent. IsLeaf is derived at the end: a node is a
// leaf iff it has no children.
func Build(rows []domain.PathRow, skip int) Result {
	res := Result{Roots: []*domain.PathNode{}}
	nodes := make(map[string]*domain.PathNode)

	for _, row := range rows {
		segs, ok := splitPath(row.Path)
		if !ok {
			res.Warnings = append(res.Warnings, Warning{Path: row.Path, Reason: "malformed path"})
			continue
		}
		if len(segs) <= skip {
			res.Warnings = append(res.Warnings, Warning{Path: row.Path, Reason: "path shorter than scope prefix"})
			continue
		}

		key := strings.Join(segs[:skip], "/")
		var parent *domain.PathNode
		for i := skip; i < len(segs); i++ {
			if key == "" {
				key = segs[i]
			} else {
				key = key + "/" + segs[i]
			}

			node := nodes[key]
			if node == nil {
				node = &domain.PathNode{Key: key, Title: segs[i], Children: []*domain.PathNode{}}
				nodes[key] = node
				if parent == nil {
					res.Roots = append(res.Roots, node)
				} else {
					parent.Children = append(parent.Children, node)
				}
			}
			parent = node
		}

		if row.EntityID == nil {
			continue
		}
		switch {
		case parent.EntityID == nil:
			id := *row.EntityID
			parent.EntityID = &id
		case *parent.EntityID != *row.EntityID:
			res.Warnings = append(res.Warnings, Warning{
				Path:   row.Path,
				Reason: fmt.Sprintf("conflicting entity ids %d and %d, keeping %d", *parent.EntityID, *row.EntityID, *parent.EntityID),
			})
		}
	}

	for _, node := range nodes {
		node.IsLeaf = len(node.Children) == 0
	}
	return res
}

// splitPath splits a slash-delimited path into its segments. Empty paths,
// leading or trailing slashes, and empty segments are rejected.
func splitPath(p string) ([]string, bool) {
	if p == "" {
		return nil, false
	}
	segs := strings.Split(p, "/")
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}
	return segs, true
}
