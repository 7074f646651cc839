// Package result holds the ranked output of a search.
package result

import (
	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/score"
)

// Hit is a product that survived filtering and scoring, with its vendor.
type Hit struct {
	Product domain.Product `json:"product"`
	Vendor  domain.Vendor  `json:"vendor"`
	Score   score.Score    `json:"score"`
}

// New creates a hit.
func New(p domain.Product, v domain.Vendor, s score.Score) Hit {
	return Hit{Product: p, Vendor: v, Score: s}
}

// Total returns the combined relevance score.
func (h Hit) Total() int { return h.Score.Total() }

// Group is one vendor's hits in the vendor-grouped view.
type Group struct {
	Vendor domain.Vendor `json:"vendor"`
	Items  []Hit         `json:"items"`
	// BestScore is the highest total among Items.
	BestScore int `json:"bestScore"`
}

// Add appends a hit and keeps BestScore current.
func (g *Group) Add(h Hit) {
	if len(g.Items) == 0 || h.Total() > g.BestScore {
		g.BestScore = h.Total()
	}
	g.Items = append(g.Items, h)
}

// VendorIDs returns the distinct vendor ids of hits in first-seen order.
func VendorIDs(hits []Hit) []string {
	seen := make(map[string]struct{}, len(hits))
	var ids []string
	for _, h := range hits {
		if _, ok := seen[h.Vendor.ID]; ok {
			continue
		}
		seen[h.Vendor.ID] = struct{}{}
		ids = append(ids, h.Vendor.ID)
	}
	return ids
}
