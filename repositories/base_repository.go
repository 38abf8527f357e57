package repositories

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned instead of gorm.ErrRecordNotFound.
var ErrNotFound = errors.New("record not found")

// IBaseRepository is the CRUD surface shared by every table repository.
type IBaseRepository[T any] interface {
	GetAll(ctx context.Context, order string) ([]T, error)
	GetWhere(ctx context.Context, field string, value interface{}, order string) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	GetCount(ctx context.Context) (int64, error)
}

// BaseRepository implements IBaseRepository with GORM.
type BaseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// getDB returns the transaction stored under "tx" in ctx, or the base connection.
func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// GetAll lists every row in the given SQL order.
func (r *BaseRepository[T]) GetAll(ctx context.Context, order string) ([]T, error) {
	var results []T
	q := r.getDB(ctx)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&results).Error; err != nil {
		configslog.Log.Error("BaseRepository.GetAll: DB error", zap.String("table", tableOf[T](r.db)), zap.Error(err))
		return nil, err
	}
	return results, nil
}

// GetWhere lists rows whose column equals value.
func (r *BaseRepository[T]) GetWhere(ctx context.Context, field string, value interface{}, order string) ([]T, error) {
	if field == "" {
		return nil, errors.New("filter field cannot be empty")
	}
	var results []T
	q := r.getDB(ctx).Where(map[string]interface{}{field: value})
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&results).Error; err != nil {
		configslog.Log.Error("BaseRepository.GetWhere: DB error",
			zap.String("table", tableOf[T](r.db)), zap.String("field", field), zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (r *BaseRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var result T
	err := r.getDB(ctx).First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BaseRepository.GetByID: DB error", zap.String("table", tableOf[T](r.db)), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// Create inserts entity. Model hooks validate before the INSERT.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity to create cannot be nil")
	}
	return r.getDB(ctx).Create(entity).Error
}

// Save writes every column of entity (insert when its primary key is zero).
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity to save cannot be nil")
	}
	return r.getDB(ctx).Save(entity).Error
}

// Update writes every column of an existing row except id and created_at.
func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity to update cannot be nil")
	}
	result := r.getDB(ctx).Model(entity).Select("*").Omit("id", "created_at", clause.Associations).Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	var entity T
	result := r.getDB(ctx).Delete(&entity, id)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.Delete: DB error", zap.String("table", tableOf[T](r.db)), zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	err := r.getDB(ctx).Model(&entity).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
