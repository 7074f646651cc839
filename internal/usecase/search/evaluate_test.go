package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/filter"
	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
)

func TestEvaluate_Deterministic(t *testing.T) {
	snap := bigSnapshot(9, 5)
	req := request.New("감속기 업체", "", mode.Natural, "", "", 1)
	interp := nlq.NewInterpreter(nlq.DefaultDictionary()).Interpret(req.Text())
	vis := Visibility{Now: testNow}

	first := Evaluate(&snap, &req, &interp, vis)
	for n := 0; n < 10; n++ {
		again := Evaluate(&snap, &req, &interp, vis)
		if !reflect.DeepEqual(first.Hits, again.Hits) {
			t.Fatal("evaluation is not deterministic")
		}
	}
}

func TestEvaluate_DoesNotMutateSnapshot(t *testing.T) {
	snap := motorSnapshot()
	before := snap.Clone()
	req := request.New("모터", "", mode.Exact, "", "", 0)

	out := Evaluate(&snap, &req, nil, Visibility{Now: testNow})
	out.Hits[0].Product.Tags[0] = "changed"
	out.Hits[0].Vendor.Categories[0] = "changed"

	if !reflect.DeepEqual(before, snap) {
		t.Error("snapshot mutated through a hit")
	}
}

func TestEvaluate_ExcludedReasons(t *testing.T) {
	snap := motorSnapshot()
	snap.Products = append(snap.Products, domain.Product{ID: "orphan", VendorID: "gone", Name: "모터"})

	req := request.New("모터", "", mode.Exact, "", "", 4.6)
	out := Evaluate(&snap, &req, nil, Visibility{Now: testNow})

	want := map[filter.Reason]int{
		filter.ReasonVendorMissing: 1,
		filter.ReasonMinRating:     1, // vx is rated 4.5
		filter.ReasonRelevance:     1, // vy passes the rating but not the text
	}
	if !reflect.DeepEqual(out.Excluded, want) {
		t.Errorf("excluded = %v, want %v", out.Excluded, want)
	}
	if out.Candidates != 3 || len(out.Hits) != 0 {
		t.Errorf("candidates=%d hits=%d, want 3/0", out.Candidates, len(out.Hits))
	}
}

func TestEvaluate_VendorQuery(t *testing.T) {
	snap := motorSnapshot()

	req := request.New("", "엑스산업", mode.Exact, "", "", 0)
	out := Evaluate(&snap, &req, nil, Visibility{Now: testNow})
	if len(out.Hits) != 1 || out.Hits[0].Vendor.ID != "vx" {
		t.Fatalf("expected only vx, got %d hits", len(out.Hits))
	}
	if out.Hits[0].Score.Vendor != 1 {
		t.Errorf("vendor score = %d, want 1", out.Hits[0].Score.Vendor)
	}
}

func TestEvaluate_MinRatingMonotonic(t *testing.T) {
	snap := bigSnapshot(10, 2)
	prev := -1
	for _, th := range []float64{0, 1, 2, 2.5, 3, 4, 4.5, 5} {
		req := request.New("", "", mode.Exact, "", "", th)
		n := len(Evaluate(&snap, &req, nil, Visibility{Now: time.Time{}}).Hits)
		if prev >= 0 && n > prev {
			t.Fatalf("raising min rating to %v grew the result from %d to %d", th, prev, n)
		}
		prev = n
	}
}

func TestEvaluate_SampleLast(t *testing.T) {
	snap := bigSnapshot(8, 2)
	req := request.New("감속기", "", mode.Exact, "", "", 0)
	out := Evaluate(&snap, &req, nil, Visibility{Now: testNow})

	sample := false
	for _, h := range out.Hits {
		if h.Vendor.IsSample {
			sample = true
		} else if sample {
			t.Fatalf("non-sample %s ranked after a sample vendor", h.Product.ID)
		}
	}
	if !sample {
		t.Fatal("fixture should contain sample vendors")
	}
}
