package handler

import (
	"net/http"

	"github.com/DerickDu/ks-backend/internal/domain"
	"github.com/DerickDu/ks-backend/internal/service"
)

// TreeHandler serves the classification tree endpoints.
type TreeHandler struct {
	svc *service.TreeService
}

// NewTreeHandler creates a new tree handler.
func NewTreeHandler(svc *service.TreeService) *TreeHandler {
	return &TreeHandler{svc: svc}
}

// domainNode is the wire shape of the domains summary tree: no leaf flag,
// no entity id, children omitted when empty.
type domainNode struct {
	Key      string       `json:"key"`
	Title    string       `json:"title"`
	Children []domainNode `json:"children,omitempty"`
}

func toDomainNodes(nodes []*domain.PathNode) []domainNode {
	out := make([]domainNode, len(nodes))
	for i, n := range nodes {
		out[i] = domainNode{Key: n.Key, Title: n.Title}
		if len(n.Children) > 0 {
			out[i].Children = toDomainNodes(n.Children)
		}
	}
	return out
}

// DomainsTree returns the domain/sub-domain summary tree.
// GET /api/entities/domains-tree?refresh=<bool>
func (h *TreeHandler) DomainsTree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.DomainsTree(r.Context(), refreshParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, toDomainNodes(roots), http.StatusOK)
}

// EntitiesTree returns the entity path tree for a (domain, sub_domain)
// pair.
// GET /api/entities-tree?domain=<string>&sub_domain=<string>&refresh=<bool>
func (h *TreeHandler) EntitiesTree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	roots, err := h.svc.EntitiesTree(r.Context(), q.Get("domain"), q.Get("sub_domain"), refreshParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, roots, http.StatusOK)
}
