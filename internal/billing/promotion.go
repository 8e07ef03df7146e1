package billing

import "github.com/thanhdat-89/qlhv-sub000/internal/model"

// ResolveDiscount returns the discount rate of the first promotion
// matching the class and month, or 0 when none matches.
//
// "First" is first in slice order; the repositories return promotions
// ordered by id, so with duplicate rows the lowest id wins.
func ResolveDiscount(classID string, month model.Month, promotions []*model.Promotion) float64 {
	p := ResolvePromotion(classID, month, promotions)
	if p == nil {
		return 0
	}
	return p.DiscountRate
}

// ResolvePromotion returns the first matching promotion record, or nil.
func ResolvePromotion(classID string, month model.Month, promotions []*model.Promotion) *model.Promotion {
	for _, p := range promotions {
		if p.ClassID == classID && p.Month == month {
			return p
		}
	}
	return nil
}
