package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/collegemonitor/monitor-api/internal/models"
)

// StudentSummary pairs a student with recent per-source activity counts.
type StudentSummary struct {
	Student            models.Student
	GithubActivities   int64
	LeetcodeActivities int64
	LinkedinActivities int64
	LastUpdated        *time.Time
}

// StudentRepository exposes persistence helpers for the student roster.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error)
	Delete(ctx context.Context, id uint) error
	ListSummaries(ctx context.Context, since time.Time) ([]StudentSummary, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs the student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("name").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error) {
	tx := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return models.Student{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Student{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a student and all of their activities. The cascade is
// enforced inside the transaction so it does not depend on the engine
// honouring the foreign key constraint.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Student{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

type sourceCount struct {
	StudentID uint
	Source    string
	Total     int64
}

type lastFetched struct {
	StudentID uint
	Last      time.Time
}

func (r *studentRepository) ListSummaries(ctx context.Context, since time.Time) ([]StudentSummary, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var counts []sourceCount
	err = r.db.WithContext(ctx).Model(&models.Activity{}).
		Select("student_id, source, COUNT(*) AS total").
		Where("fetched_at > ?", since).
		Group("student_id, source").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	var lasts []lastFetched
	err = r.db.WithContext(ctx).Model(&models.Activity{}).
		Select("student_id, MAX(fetched_at) AS last").
		Group("student_id").
		Scan(&lasts).Error
	if err != nil {
		return nil, err
	}

	countsByStudent := make(map[uint]map[string]int64, len(counts))
	for _, c := range counts {
		if countsByStudent[c.StudentID] == nil {
			countsByStudent[c.StudentID] = make(map[string]int64, 3)
		}
		countsByStudent[c.StudentID][c.Source] = c.Total
	}

	lastByStudent := make(map[uint]time.Time, len(lasts))
	for _, l := range lasts {
		lastByStudent[l.StudentID] = l.Last
	}

	summaries := make([]StudentSummary, 0, len(students))
	for _, student := range students {
		summary := StudentSummary{Student: student}
		if bySource, ok := countsByStudent[student.ID]; ok {
			summary.GithubActivities = bySource["GitHub"]
			summary.LeetcodeActivities = bySource["LeetCode"]
			summary.LinkedinActivities = bySource["LinkedIn"]
		}
		if last, ok := lastByStudent[student.ID]; ok {
			lastCopy := last
			summary.LastUpdated = &lastCopy
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
