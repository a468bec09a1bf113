package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskrewards/internal/domain"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return translate(r.db.WithContext(ctx).Create(task).Error)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, translate(err)
}

func (r *TaskRepository) GetByOwner(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"coins_reward": task.CoinsReward,
			"due_date":     task.DueDate,
			"priority":     task.Priority,
			"category":     task.Category,
		}).Error
	return translate(err)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&domain.Task{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Complete flips the completion flag and credits the owner in one
// transaction. The row lock makes two concurrent completions of the same
// task serialize, so the reward is credited exactly once.
func (r *TaskRepository) Complete(ctx context.Context, userID, taskID uuid.UUID) (int, error) {
	var earned int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task domain.Task
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", taskID, userID).
			First(&task).Error
		if err != nil {
			return translate(err)
		}
		if task.Completed {
			return domain.ErrTaskAlreadyCompleted
		}
		if err := tx.Model(&domain.Task{}).
			Where("id = ?", task.ID).
			Update("completed", true).Error; err != nil {
			return translate(err)
		}
		earned = task.CoinsReward
		return creditUser(tx, userID, task.CoinsReward)
	})
	if err != nil {
		return 0, err
	}
	return earned, nil
}
