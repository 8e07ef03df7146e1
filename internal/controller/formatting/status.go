package formatting

import "github.com/thanhdat-89/qlhv-sub000/internal/model"

// StatusDisplay pairs an emoji with a short label.
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetStatementStatusDisplay returns the display for a statement status.
func GetStatementStatusDisplay(status model.StatementStatus) StatusDisplay {
	displays := map[model.StatementStatus]StatusDisplay{
		model.StatementCompleted: {"✅", "Completed"},
		model.StatementOwing:     {"🔴", "Owing"},
		model.StatementNA:        {"⚪️", "N/A"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}

// GetStudentStatusDisplay returns the display for a student's
// lifecycle status.
func GetStudentStatusDisplay(status model.StudentStatus) StatusDisplay {
	displays := map[model.StudentStatus]StatusDisplay{
		model.StatusNewlyEnrolled: {"🆕", "Newly enrolled"},
		model.StatusActive:        {"🟢", "Active"},
		model.StatusWithdrawn:     {"⚫️", "Withdrawn"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}
