// services/problem_service.go - problem statement management
package services

import (
	"errors"

	"hackreg/models"

	"gorm.io/gorm"
)

type ProblemService struct {
	db *gorm.DB
}

func NewProblemService(db *gorm.DB) *ProblemService {
	return &ProblemService{db: db}
}

type ProblemInput struct {
	Title       string
	Category    string
	Slug        string
	Description string
	IsActive    *bool
}

// Create stores a new problem statement. Slug collisions are reported as a
// conflict whether caught by the pre-check or by the unique index.
func (s *ProblemService) Create(input ProblemInput) (*models.Problem, error) {
	if input.Title == "" || input.Category == "" || input.Slug == "" || input.Description == "" {
		return nil, NewError(ErrorCodeValidation, "Missing required fields")
	}

	var existing models.Problem
	if err := s.db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		return nil, NewError(ErrorCodeConflict, "Problem with this slug already exists")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	problem := &models.Problem{
		Title:       input.Title,
		Category:    input.Category,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    isActive,
	}

	if err := s.db.Create(problem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewError(ErrorCodeConflict, "Problem with this slug already exists")
		}
		return nil, NewError(ErrorCodeInternal, "Internal server error")
	}

	return problem, nil
}

// ListActive returns the active problems. The result is always a non-nil
// slice so an empty listing serializes as [].
func (s *ProblemService) ListActive() ([]models.Problem, error) {
	problems := make([]models.Problem, 0)
	if err := s.db.Where("is_active = ?", true).Find(&problems).Error; err != nil {
		return nil, NewError(ErrorCodeInternal, "Failed to fetch problem statements")
	}
	return problems, nil
}
