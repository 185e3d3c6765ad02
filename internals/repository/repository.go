// Generic CRUD data access shared by every entity controller. One
// type-parameterized repository replaces the per-entity wrapper classes the
// rest of the system would otherwise need.
package repository

import (
	"context"

	"gorm.io/gorm"

	helper "campushub_backend/internals/helpers"
)

type Repo[T any] struct {
	DB *gorm.DB
}

func New[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{DB: db}
}

// Query returns a builder scoped to the entity's table.
func (r *Repo[T]) Query(ctx context.Context) *gorm.DB {
	var m T
	return r.DB.WithContext(ctx).Model(&m)
}

func (r *Repo[T]) GetByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	q := r.DB.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var row T
	if err := q.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo[T]) Create(ctx context.Context, row *T) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *Repo[T]) CreateMultiple(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&rows).Error
}

// Update applies the given column map to the row with this id and returns the
// refreshed row.
func (r *Repo[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	var row T
	if err := r.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id uint) error {
	var m T
	res := r.DB.WithContext(ctx).Delete(&m, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Paginate runs q twice (count + page fetch) and fills out.
func (r *Repo[T]) Paginate(q *gorm.DB, p helper.Paging, out *[]T) (helper.Pagination, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Pagination{}, err
	}
	if err := q.Offset(p.Offset).Limit(p.Limit).Find(out).Error; err != nil {
		return helper.Pagination{}, err
	}
	return helper.BuildPagination(total, p, len(*out)), nil
}
