package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	"github.com/lumen-academy/academy-api/internal/repository"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
	"github.com/lumen-academy/academy-api/pkg/export"
)

type registrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, int, error)
	ListAll(ctx context.Context) ([]models.Registration, error)
}

// RegistrationService provides registration use cases.
type RegistrationService struct {
	repo      registrationRepository
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewRegistrationService constructs a RegistrationService instance.
func NewRegistrationService(repo registrationRepository, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RegistrationService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Create validates and stores one registration submission.
func (s *RegistrationService) Create(ctx context.Context, req dto.CreateRegistrationRequest) (*models.Registration, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	if req.FullName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Full name is required.")
	}
	if req.Email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email is required.")
	}
	if req.PhoneNumber == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Phone number is required.")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "A valid email address is required.")
	}

	reg := &models.Registration{
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		ContactMethod:    req.ContactMethod,
		Age:              req.Age,
		SkillCategory:    req.SkillCategory,
		Experience:       req.Experience,
		EmploymentStatus: req.EmploymentStatus,
		LectureTime:      req.LectureTime,
		LearningMethod:   req.LearningMethod,
		Motivation:       req.Motivation,
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "This email is already registered.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Server error during registration.")
	}

	s.logger.Info("registration created", zap.Int64("id", reg.ID), zap.String("full_name", reg.FullName))
	return reg, nil
}

// List returns registrations newest-first with pagination metadata.
func (s *RegistrationService) List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, *models.Pagination, error) {
	registrations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to load registrations.")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	return registrations, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// ExportFormat selects the rendering for registration exports.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered export document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders every registration into the requested tabular format.
func (s *RegistrationService) Export(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	registrations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to load registrations.")
	}

	dataset := registrationsDataset(registrations)
	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case ExportCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to render export.")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("registrations-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportPDF:
		data, err := s.pdf.Render(dataset, "Course Registrations")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to render export.")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("registrations-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "Unsupported export format.")
	}
}

func registrationsDataset(registrations []models.Registration) export.Dataset {
	headers := []string{"ID", "Full Name", "Email", "Phone", "Contact Method", "Age", "Skill Category", "Experience", "Employment", "Lecture Time", "Learning Method", "Submitted"}
	rows := make([]map[string]string, 0, len(registrations))
	for _, reg := range registrations {
		rows = append(rows, map[string]string{
			"ID":              fmt.Sprintf("%d", reg.ID),
			"Full Name":       reg.FullName,
			"Email":           reg.Email,
			"Phone":           reg.PhoneNumber,
			"Contact Method":  reg.ContactMethod,
			"Age":             reg.Age,
			"Skill Category":  reg.SkillCategory,
			"Experience":      reg.Experience,
			"Employment":      reg.EmploymentStatus,
			"Lecture Time":    reg.LectureTime,
			"Learning Method": reg.LearningMethod,
			"Submitted":       reg.CreatedAt.Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
