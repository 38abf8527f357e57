package repositories

import (
	"context"

	"portfolio.site/models"

	"gorm.io/gorm"
)

// Display orders. Every order ends on id so ties never depend on insertion order.
const (
	// order asc, start_date desc (undated entries last)
	TimelineOrder    = "sort_order ASC, CASE WHEN start_date IS NULL THEN 1 ELSE 0 END ASC, start_date DESC, id ASC"
	SkillOrder       = "category ASC, sort_order ASC, id ASC"
	ProjectOrder     = "sort_order ASC, created_at DESC, id DESC"
	TestimonialOrder = "sort_order ASC, created_at DESC, id DESC"
	MessageOrder     = "created_at DESC, id DESC"
	ImageOrder       = "sort_order ASC, created_at ASC, id ASC"
)

// IOrderedRepository adds listing in the table's display order.
type IOrderedRepository[T any] interface {
	IBaseRepository[T]
	ListOrdered(ctx context.Context) ([]T, error)
	ListWhere(ctx context.Context, field string, value interface{}) ([]T, error)
}

type OrderedRepository[T any] struct {
	*BaseRepository[T]
	order string
}

func NewOrderedRepository[T any](db *gorm.DB, order string) *OrderedRepository[T] {
	return &OrderedRepository[T]{BaseRepository: NewBaseRepository[T](db), order: order}
}

func (r *OrderedRepository[T]) ListOrdered(ctx context.Context) ([]T, error) {
	return r.GetAll(ctx, r.order)
}

func (r *OrderedRepository[T]) ListWhere(ctx context.Context, field string, value interface{}) ([]T, error) {
	return r.GetWhere(ctx, field, value, r.order)
}

func NewEducationRepository(db *gorm.DB) IOrderedRepository[models.Education] {
	return NewOrderedRepository[models.Education](db, TimelineOrder)
}

func NewExperienceRepository(db *gorm.DB) IOrderedRepository[models.Experience] {
	return NewOrderedRepository[models.Experience](db, TimelineOrder)
}

func NewSkillRepository(db *gorm.DB) IOrderedRepository[models.Skill] {
	return NewOrderedRepository[models.Skill](db, SkillOrder)
}

func NewTestimonialRepository(db *gorm.DB) IOrderedRepository[models.Testimonial] {
	return NewOrderedRepository[models.Testimonial](db, TestimonialOrder)
}

var _ IOrderedRepository[models.Skill] = (*OrderedRepository[models.Skill])(nil)
