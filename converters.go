package marketplace

import (
	"slices"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

func fromVendor(v *domain.Vendor, a domain.Actor) Vendor {
	shown := v.PresentedTo(a)
	return Vendor{
		ID:          shown.ID,
		CompanyName: shown.CompanyName,
		Categories:  shown.Categories,
		Contact: Contact{
			Phone: shown.Contact.Phone,
			Email: shown.Contact.Email,
			Kakao: shown.Contact.Kakao,
		},
		AvgRating:    shown.AvgRating,
		ReviewCount:  shown.ReviewCount,
		Status:       string(shown.Status),
		BlockedUntil: shown.BlockedUntil,
		Sample:       shown.IsSample,
	}
}

func fromProduct(p *domain.Product) Product {
	return Product{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Category:    p.Category,
		Tags:        slices.Clone(p.Tags),
		Description: p.Desc,
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
	}
}

func fromHits(hits []result.Hit, a domain.Actor) []Hit {
	if hits == nil {
		return nil
	}
	out := make([]Hit, len(hits))
	for i := range hits {
		h := &hits[i]
		out[i] = Hit{
			Product:      fromProduct(&h.Product),
			Vendor:       fromVendor(&h.Vendor, a),
			Score:        h.Total(),
			ProductScore: h.Score.Product,
			VendorScore:  h.Score.Vendor,
		}
	}
	return out
}

func fromGroups(groups []result.Group, a domain.Actor) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i := range groups {
		g := &groups[i]
		out[i] = Group{
			Vendor:    fromVendor(&g.Vendor, a),
			Items:     fromHits(g.Items, a),
			BestScore: g.BestScore,
		}
	}
	return out
}

func fromInterpretation(in nlq.Interpretation) Interpretation {
	return Interpretation{
		Keywords:   slices.Clone(in.Keywords),
		Categories: slices.Clone(in.Categories),
	}
}

func fromPage(p page.Page) Pagination {
	links := make([]PageLink, len(p.Items))
	for i, it := range p.Items {
		links[i] = PageLink{Number: it.Number, Ellipsis: it.Ellipsis}
	}
	return Pagination{
		Current: p.Current,
		Count:   p.Count,
		Total:   p.Total,
		Size:    p.Size,
		Offset:  p.Offset,
		Limit:   p.Limit,
		Links:   links,
	}
}

func fromResponse(resp *searchuc.Response, a domain.Actor) SearchResult {
	out := SearchResult{
		View:         View(resp.View),
		Page:         fromPage(resp.Page),
		Hits:         fromHits(resp.Hits, a),
		Groups:       fromGroups(resp.Groups, a),
		TotalHits:    resp.TotalHits,
		TotalVendors: resp.TotalVendors,
	}
	if resp.Interpretation != nil {
		in := fromInterpretation(*resp.Interpretation)
		out.Interpretation = &in
	}
	return out
}
