package billing

import "github.com/thanhdat-89/qlhv-sub000/internal/model"

// IsExcluded reports whether date is a non-teaching day for the class.
// A date is excluded when any holiday covers it (inclusive on both
// ends) and the holiday is either global (no class id) or scoped to
// this class.
//
// Comparison is plain string comparison on canonical "YYYY-MM-DD"
// values, which is valid because the format is fixed-width and zero-padded.
// The expander calls this once per day per class; keep it cheap.
func IsExcluded(date model.Date, classID string, holidays []*model.Holiday) bool {
	for _, h := range holidays {
		if !h.AppliesTo(classID) {
			continue
		}
		end := h.EndDate
		if end.IsZero() {
			end = h.Date
		}
		if h.Date <= date && date <= end {
			return true
		}
	}
	return false
}
