package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/models"
	"github.com/collegemonitor/monitor-api/internal/repository"
)

// ErrStudentNotFound is returned when the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrEmailTaken is returned when another student already uses the email.
var ErrEmailTaken = errors.New("email already in use")

// StudentService manages the roster of tracked students.
type StudentService interface {
	List(ctx context.Context) (dto.StudentListResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) (dto.StudentListResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list students")
		return dto.StudentListResponse{}, err
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.NewStudentResponse(student))
	}

	return dto.StudentListResponse{Items: items, Total: len(items)}, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		GithubUsername:   strings.TrimSpace(req.GithubUsername),
		LeetcodeUsername: strings.TrimSpace(req.LeetcodeUsername),
		LinkedinProfile:  strings.TrimSpace(req.LinkedinProfile),
		Notes:            s.policy.Sanitize(req.Notes),
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		if isDuplicateKey(err) {
			return dto.StudentResponse{}, ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create student")
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.GithubUsername != nil {
		updates["github_username"] = strings.TrimSpace(*req.GithubUsername)
	}
	if req.LeetcodeUsername != nil {
		updates["leetcode_username"] = strings.TrimSpace(*req.LeetcodeUsername)
	}
	if req.LinkedinProfile != nil {
		updates["linkedin_profile"] = strings.TrimSpace(*req.LinkedinProfile)
	}
	if req.Notes != nil {
		updates["notes"] = s.policy.Sanitize(*req.Notes)
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	student, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.StudentResponse{}, ErrStudentNotFound
		case isDuplicateKey(err):
			return dto.StudentResponse{}, ErrEmailTaken
		default:
			s.logger.Error().Err(err).Uint("student_id", id).Msg("failed to update student")
			return dto.StudentResponse{}, err
		}
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error().Err(err).Uint("student_id", id).Msg("failed to delete student")
		return err
	}

	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific duplicate errors do not always map onto the gorm
	// sentinel, so fall back to inspecting the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
