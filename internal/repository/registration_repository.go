package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lumen-academy/academy-api/internal/models"
)

// RegistrationRepository provides database access for course registrations.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository creates a new instance of RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts one registration and fills in its generated ID.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO registrations
		(full_name, email, phone_number, contact_method, age, skill_category, experience, employment_status, lecture_time, learning_method, motivation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		reg.FullName,
		reg.Email,
		reg.PhoneNumber,
		reg.ContactMethod,
		reg.Age,
		reg.SkillCategory,
		reg.Experience,
		reg.EmploymentStatus,
		reg.LectureTime,
		reg.LearningMethod,
		reg.Motivation,
		reg.CreatedAt,
	).Scan(&reg.ID); err != nil {
		if mapped := mapDuplicate(err); mapped == ErrDuplicate {
			return mapped
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// List returns registrations newest-first with total count.
func (r *RegistrationRepository) List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, int, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	listQuery := fmt.Sprintf(`SELECT id, full_name, email, phone_number, contact_method, age, skill_category, experience, employment_status, lecture_time, learning_method, motivation, created_at FROM registrations ORDER BY created_at DESC LIMIT %d OFFSET %d`, pageSize, offset)

	var registrations []models.Registration
	if err := r.db.SelectContext(ctx, &registrations, listQuery); err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM registrations`); err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}

	return registrations, total, nil
}

// ListAll returns every registration newest-first, for exports.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]models.Registration, error) {
	const query = `SELECT id, full_name, email, phone_number, contact_method, age, skill_category, experience, employment_status, lecture_time, learning_method, motivation, created_at FROM registrations ORDER BY created_at DESC`
	var registrations []models.Registration
	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("list all registrations: %w", err)
	}
	return registrations, nil
}
