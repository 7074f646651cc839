package domain

import "time"

// QuoteItem is one line of a price quote. ProductID is set when the line
// was added from a listed product.
type QuoteItem struct {
	ProductID    string `json:"productId,omitempty"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	Qty          int    `json:"qty"`
	Detail       string `json:"detail"`
	Memo         string `json:"memo"`
	UnitPriceMin *int64 `json:"unitPriceMin,omitempty"`
	UnitPriceMax *int64 `json:"unitPriceMax,omitempty"`
}

// Quote is a saved list of items a buyer wants priced.
type Quote struct {
	ID          string      `json:"id"`
	BuyerUserID string      `json:"buyerUserId"`
	Items       []QuoteItem `json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Clone returns a copy that shares no slices or pointers with q.
func (q Quote) Clone() Quote {
	if q.Items != nil {
		items := make([]QuoteItem, len(q.Items))
		for i, it := range q.Items {
			it.UnitPriceMin = clonePrice(it.UnitPriceMin)
			it.UnitPriceMax = clonePrice(it.UnitPriceMax)
			items[i] = it
		}
		q.Items = items
	}
	return q
}

// QuotesOf returns the quotes saved by a user, in snapshot order.
func (s *Snapshot) QuotesOf(userID string) []Quote {
	var out []Quote
	for _, q := range s.Quotes {
		if q.BuyerUserID == userID {
			out = append(out, q.Clone())
		}
	}
	return out
}

func clonePrice(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
