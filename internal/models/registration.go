package models

import "time"

// Registration is one submitted course-registration record. Rows are
// insert-only; nothing updates or deletes them.
type Registration struct {
	ID               int64     `db:"id" json:"id"`
	FullName         string    `db:"full_name" json:"fullName"`
	Email            string    `db:"email" json:"email"`
	PhoneNumber      string    `db:"phone_number" json:"phoneNumber"`
	ContactMethod    string    `db:"contact_method" json:"contactMethod"`
	Age              string    `db:"age" json:"age"`
	SkillCategory    string    `db:"skill_category" json:"skillCategory"`
	Experience       string    `db:"experience" json:"experience"`
	EmploymentStatus string    `db:"employment_status" json:"employmentStatus"`
	LectureTime      string    `db:"lecture_time" json:"lectureTime"`
	LearningMethod   string    `db:"learning_method" json:"learningMethod"`
	Motivation       string    `db:"motivation" json:"motivation"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// RegistrationFilter captures paging criteria for the admin listing.
type RegistrationFilter struct {
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
