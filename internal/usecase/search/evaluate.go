package search

import (
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/filter"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/rank"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	"github.com/estimatecheck/marketplace/internal/domain/search/score"
)

// Visibility is the caller-dependent part of an evaluation.
type Visibility struct {
	Admin bool
	Now   time.Time
}

// Outcome is a full, unpaginated search evaluation.
type Outcome struct {
	// Hits are ranked: non-sample first, then score, then vendor rating.
	Hits []result.Hit
	// Interpretation is set only when the natural-language interpreter ran.
	Interpretation *nlq.Interpretation
	// Candidates is the number of products considered.
	Candidates int
	// Excluded counts dropped candidates per reason.
	Excluded map[filter.Reason]int
}

// Groups returns the hits grouped by vendor in ranked order.
func (o Outcome) Groups() []result.Group {
	return rank.Group(o.Hits)
}

// Evaluate runs the filter pipeline, the scorer and the ranker over snap.
// It is pure: the same inputs always produce the same outcome.
// interp is applied only when non-nil.
func Evaluate(
	snap *domain.Snapshot, req *request.Request, interp *nlq.Interpretation, vis Visibility,
) Outcome {
	criteria := filter.Criteria{
		Category:  req.Category(),
		VendorID:  req.VendorID(),
		MinRating: req.MinRating(),
		Admin:     vis.Admin,
		Now:       vis.Now,
	}
	var keywords []string
	if interp != nil {
		criteria.InferredCategories = interp.Categories
		keywords = interp.Keywords
	}
	terms := score.NewTerms(req.Text(), keywords, req.VendorText())

	vendors := snap.VendorIndex()
	out := Outcome{
		Interpretation: interp,
		Candidates:     len(snap.Products),
		Excluded:       make(map[filter.Reason]int),
	}

	for i := range snap.Products {
		p := &snap.Products[i]
		v := vendors[p.VendorID]

		if reason, ok := criteria.Apply(p, v); !ok {
			out.Excluded[reason]++
			continue
		}
		s, ok := score.Evaluate(terms, p, v)
		if !ok {
			out.Excluded[filter.ReasonRelevance]++
			continue
		}
		out.Hits = append(out.Hits, result.New(p.Clone(), v.Clone(), s))
	}

	rank.Sort(out.Hits)
	return out
}
