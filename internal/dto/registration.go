package dto

// CreateRegistrationRequest is the public registration payload. Field names
// match what the browser form serializes.
type CreateRegistrationRequest struct {
	FullName         string `json:"fullName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phoneNumber" validate:"required"`
	ContactMethod    string `json:"contactMethod"`
	Age              string `json:"age"`
	SkillCategory    string `json:"skillCategory"`
	Experience       string `json:"experience"`
	EmploymentStatus string `json:"employmentStatus"`
	LectureTime      string `json:"lectureTime"`
	LearningMethod   string `json:"learningMethod"`
	Motivation       string `json:"motivation"`
}
