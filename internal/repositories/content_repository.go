package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListOptions narrows a content listing. Zero values mean "no filter".
type ListOptions struct {
	Limit    int
	Featured *bool
	Filters  map[string]interface{} // column = value
	Order    string
}

// ContentRepository is the CRUD surface shared by every content table.
type ContentRepository[T any] interface {
	Create(db *gorm.DB, entity *T) error
	FindByID(db *gorm.DB, id uint) (*T, error)
	Update(db *gorm.DB, entity *T) error
	Delete(db *gorm.DB, id uint) error
	List(db *gorm.DB, opts ListOptions) ([]T, error)
	Count(db *gorm.DB) (int64, error)
}

type contentRepository[T any] struct {
	pk           string
	notFound     error
	defaultOrder string
}

func newContentRepository[T any](pk string, notFound error) *contentRepository[T] {
	return &contentRepository[T]{
		pk:           pk,
		notFound:     notFound,
		defaultOrder: fmt.Sprintf("created_at DESC, %s DESC", pk),
	}
}

func (r *contentRepository[T]) Create(db *gorm.DB, entity *T) error {
	return db.Create(entity).Error
}

func (r *contentRepository[T]) FindByID(db *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := db.Where(r.pk+" = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}
		return nil, err
	}
	return &entity, nil
}

// Update writes every column of entity, zero values included.
func (r *contentRepository[T]) Update(db *gorm.DB, entity *T) error {
	return db.Save(entity).Error
}

func (r *contentRepository[T]) Delete(db *gorm.DB, id uint) error {
	result := db.Where(r.pk+" = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

func (r *contentRepository[T]) List(db *gorm.DB, opts ListOptions) ([]T, error) {
	items := make([]T, 0)
	if err := r.applyOptions(db.Model(new(T)), opts).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepository[T]) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(new(T)).Count(&count).Error
	return count, err
}

func (r *contentRepository[T]) applyOptions(query *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.Featured != nil {
		query = query.Where("is_featured = ?", *opts.Featured)
	}
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}
	order := opts.Order
	if order == "" {
		order = r.defaultOrder
	}
	query = query.Order(order)
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return query
}

// searchByColumn runs a case-insensitive substring match on one column.
func searchByColumn[T any](db *gorm.DB, column, term string, order string) ([]T, error) {
	items := make([]T, 0)
	err := db.Model(new(T)).
		Where("LOWER("+column+") LIKE ?", likePattern(term)).
		Order(order).
		Find(&items).Error
	return items, err
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// Bool is a helper for ListOptions.Featured.
func Bool(v bool) *bool {
	return &v
}
