package services

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"go.uber.org/zap"
)

// ShowcaseServiceError is returned by the dashboard record services.
type ShowcaseServiceError string

func (e ShowcaseServiceError) Error() string { return string(e) }

const (
	ErrRecordNotFound ShowcaseServiceError = "record not found"
	ErrInvalidID      ShowcaseServiceError = "invalid record id"
)

// Showcase is any dashboard-managed list record.
type Showcase interface {
	models.Education | models.Experience | models.Skill | models.Project | models.Testimonial
}

// IShowcaseService is the CRUD surface of one showcase table.
type IShowcaseService[T Showcase] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint, record *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ShowcaseService[T Showcase] struct {
	name string
	repo repositories.IOrderedRepository[T]
}

// NewShowcaseService wraps repo. name is used in log lines.
func NewShowcaseService[T Showcase](name string, repo repositories.IOrderedRepository[T]) IShowcaseService[T] {
	return &ShowcaseService[T]{name: name, repo: repo}
}

// List returns every record in display order.
func (s *ShowcaseService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.ListOrdered(ctx)
	if err != nil {
		return nil, storeError("list "+s.name, err)
	}
	return records, nil
}

// Get loads one record or ErrRecordNotFound.
func (s *ShowcaseService[T]) Get(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, storeError("get "+s.name, err)
	}
	return record, nil
}

// Create validates and stores record.
func (s *ShowcaseService[T]) Create(ctx context.Context, record *T) error {
	setID(record, 0)
	if err := s.repo.Create(ctx, record); err != nil {
		if !errors.Is(err, models.ErrValidation) {
			configslog.Log.Error("Showcase record could not be created", zap.String("kind", s.name), zap.Error(err))
		}
		return storeError("create "+s.name, err)
	}
	configslog.SLog.Infof("%s created: ID %d", s.name, idOf(record))
	return nil
}

// Update overwrites the record at id with every field of record.
func (s *ShowcaseService[T]) Update(ctx context.Context, id uint, record *T) error {
	if id == 0 {
		return ErrInvalidID
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	setID(record, id)
	setCreatedAt(record, existing)
	if err := s.repo.Update(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		if !errors.Is(err, models.ErrValidation) {
			configslog.Log.Error("Showcase record could not be updated", zap.String("kind", s.name), zap.Uint("id", id), zap.Error(err))
		}
		return storeError("update "+s.name, err)
	}
	configslog.SLog.Infof("%s updated: ID %d", s.name, id)
	return nil
}

// Delete removes a record by id.
func (s *ShowcaseService[T]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return storeError("delete "+s.name, err)
	}
	configslog.SLog.Infof("%s deleted: ID %d", s.name, id)
	return nil
}

func (s *ShowcaseService[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.GetCount(ctx)
	if err != nil {
		return 0, storeError("count "+s.name, err)
	}
	return n, nil
}

func setID[T any](record *T, id uint) {
	if r, ok := any(record).(models.Record); ok {
		r.SetID(id)
	}
}

func idOf[T any](record *T) uint {
	if r, ok := any(record).(models.Record); ok {
		return r.GetID()
	}
	return 0
}

// setCreatedAt carries created_at over so ordering by creation time survives edits.
func setCreatedAt[T any](record, existing *T) {
	type stamped interface{ Base() *models.BaseModel }
	dst, ok1 := any(record).(stamped)
	src, ok2 := any(existing).(stamped)
	if ok1 && ok2 {
		dst.Base().CreatedAt = src.Base().CreatedAt
	}
}

var _ IShowcaseService[models.Skill] = (*ShowcaseService[models.Skill])(nil)
