package repositories

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IProjectRepository lists projects in display order with status filtering.
type IProjectRepository interface {
	IOrderedRepository[models.Project]
	ListByStatuses(ctx context.Context, statuses []models.ProjectStatus) ([]models.Project, error)
}

type ProjectRepository struct {
	*OrderedRepository[models.Project]
}

func NewProjectRepository(db *gorm.DB) IProjectRepository {
	return &ProjectRepository{OrderedRepository: NewOrderedRepository[models.Project](db, ProjectOrder)}
}

// ListByStatuses returns projects whose status is in statuses.
func (r *ProjectRepository) ListByStatuses(ctx context.Context, statuses []models.ProjectStatus) ([]models.Project, error) {
	if len(statuses) == 0 {
		return nil, errors.New("at least one project status is required")
	}
	values := make([]string, len(statuses))
	for i, st := range statuses {
		values[i] = string(st)
	}
	var projects []models.Project
	err := r.getDB(ctx).Where("status IN ?", values).Order(ProjectOrder).Find(&projects).Error
	if err != nil {
		configslog.Log.Error("ProjectRepository.ListByStatuses: DB error", zap.Any("statuses", statuses), zap.Error(err))
		return nil, err
	}
	return projects, nil
}

var _ IProjectRepository = (*ProjectRepository)(nil)
