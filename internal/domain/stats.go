package domain

import "math"

// VendorStats computes the derived rating of a vendor from a review set:
// the mean rating rounded to one decimal (0 with no reviews) and the count.
func VendorStats(reviews []Review, vendorID string) (avg float64, count int) {
	sum := 0
	for _, r := range reviews {
		if r.VendorID != vendorID {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, count
}

// RecalcVendorStats returns a copy of s with one vendor's derived stats
// recomputed from s.Reviews. Idempotent.
func RecalcVendorStats(s Snapshot, vendorID string) Snapshot {
	out := s
	out.Vendors = make([]Vendor, len(s.Vendors))
	copy(out.Vendors, s.Vendors)
	for i := range out.Vendors {
		if out.Vendors[i].ID == vendorID {
			out.Vendors[i].AvgRating, out.Vendors[i].ReviewCount = VendorStats(s.Reviews, vendorID)
		}
	}
	return out
}

// RecalcAllVendorStats returns a copy of s with every vendor's derived stats recomputed.
func RecalcAllVendorStats(s Snapshot) Snapshot {
	out := s
	out.Vendors = make([]Vendor, len(s.Vendors))
	copy(out.Vendors, s.Vendors)
	for i := range out.Vendors {
		out.Vendors[i].AvgRating, out.Vendors[i].ReviewCount = VendorStats(s.Reviews, out.Vendors[i].ID)
	}
	return out
}
