package models

import "encoding/json"

const StudentStatusActive = "active"

type Student struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Age    float64         `json:"age"`
	Course string          `json:"course"`
	Year   json.RawMessage `json:"year"`
	Status string          `json:"status"`
}

// NewStudent builds a student record. A nil status means the caller did not
// send one and the student starts out active.
func NewStudent(id, name string, age float64, course string, year json.RawMessage, status *string) Student {
	s := Student{
		ID:     id,
		Name:   name,
		Age:    age,
		Course: course,
		Year:   year,
		Status: StudentStatusActive,
	}

	if status != nil {
		s.Status = *status
	}

	return s
}
