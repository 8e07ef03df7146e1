// Package billing is the tuition computation engine: pure functions
// over an immutable snapshot of the center's records. Nothing in this
// package performs I/O or mutates its inputs, so statements for
// different students or months may be computed concurrently over the
// same snapshot.
package billing

import (
	"github.com/google/uuid"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

// Snapshot is an immutable view of all records the engine reads. A
// snapshot is built once per load and passed by pointer; callers that
// cache computed statements can key the cache on Version.
type Snapshot struct {
	Version uuid.UUID

	Students      []*model.Student
	Classes       []*model.ClassSchedule
	ExtraSessions []*model.ExtraSession
	Payments      []*model.Payment
	Holidays      []*model.Holiday
	Promotions    []*model.Promotion

	studentByID map[string]*model.Student
	classByID   map[string]*model.ClassSchedule
}

// NewSnapshot builds a snapshot with lookup indexes. Slice order is
// preserved; the promotion resolver's first-match rule depends on it.
func NewSnapshot(
	students []*model.Student,
	classes []*model.ClassSchedule,
	extras []*model.ExtraSession,
	payments []*model.Payment,
	holidays []*model.Holiday,
	promotions []*model.Promotion,
) *Snapshot {
	snap := &Snapshot{
		Version:       uuid.New(),
		Students:      students,
		Classes:       classes,
		ExtraSessions: extras,
		Payments:      payments,
		Holidays:      holidays,
		Promotions:    promotions,
		studentByID:   make(map[string]*model.Student, len(students)),
		classByID:     make(map[string]*model.ClassSchedule, len(classes)),
	}
	for _, s := range students {
		snap.studentByID[s.ID] = s
	}
	for _, c := range classes {
		snap.classByID[c.ID] = c
	}
	return snap
}

// StudentByID returns the student or nil.
func (s *Snapshot) StudentByID(id string) *model.Student {
	return s.studentByID[id]
}

// ClassByID returns the class or nil.
func (s *Snapshot) ClassByID(id string) *model.ClassSchedule {
	return s.classByID[id]
}

// extrasFor returns the student's extra sessions in snapshot order.
func (s *Snapshot) extrasFor(studentID string) []*model.ExtraSession {
	var out []*model.ExtraSession
	for _, e := range s.ExtraSessions {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// paymentsFor returns the student's payments in snapshot order.
func (s *Snapshot) paymentsFor(studentID string) []*model.Payment {
	var out []*model.Payment
	for _, p := range s.Payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}
