package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"gorm.io/gorm"
)

var _ store.Client = (*Store)(nil)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrEmptyFilter       = errors.New("refusing unfiltered delete")
)

// Store implements store.Client on a GORM connection.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// models maps collection names to GORM model prototypes so Update and Delete
// resolve the table through the schema rather than a raw table string.
func models() map[string]func() any {
	return map[string]func() any{
		domain.Post{}.TableName():                    func() any { return &domain.Post{} },
		domain.Marginalia{}.TableName():              func() any { return &domain.Marginalia{} },
		domain.Postcard{}.TableName():                func() any { return &domain.Postcard{} },
		domain.Discussion{}.TableName():              func() any { return &domain.Discussion{} },
		domain.ContactMessage{}.TableName():          func() any { return &domain.ContactMessage{} },
		domain.TextSubmission{}.TableName():          func() any { return &domain.TextSubmission{} },
		domain.Text{}.TableName():                    func() any { return &domain.Text{} },
		domain.Facilitator{}.TableName():             func() any { return &domain.Facilitator{} },
		domain.AIIdentity{}.TableName():              func() any { return &domain.AIIdentity{} },
		domain.FacilitatorNotification{}.TableName(): func() any { return &domain.FacilitatorNotification{} },
		domain.FacilitatorSubscription{}.TableName(): func() any { return &domain.FacilitatorSubscription{} },
		domain.Prompt{}.TableName():                  func() any { return &domain.Prompt{} },
		domain.Operator{}.TableName():                func() any { return &domain.Operator{} },
	}
}

func (s *Store) model(collection string) (any, error) {
	proto, ok := models()[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return proto(), nil
}

func (s *Store) List(ctx context.Context, collection string, filters store.Filters, newestFirst bool, dest any) error {
	model, err := s.model(collection)
	if err != nil {
		return err
	}
	q := s.db.WithContext(ctx).Model(model)
	for column, value := range filters {
		q = q.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if newestFirst {
		q = q.Order("created_at DESC")
	}
	return q.Find(dest).Error
}

func (s *Store) Update(ctx context.Context, collection string, id string, patch store.Patch) error {
	model, err := s.model(collection)
	if err != nil {
		return err
	}
	// RowsAffected is not checked: MySQL reports zero affected rows for a
	// no-op value change, so it cannot distinguish "missing" from
	// "already in that state". Target existence is validated upstream
	// against the cached view.
	return s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(map[string]any(patch)).Error
}

func (s *Store) UpdateWhere(ctx context.Context, collection string, filters store.Filters, patch store.Patch) error {
	model, err := s.model(collection)
	if err != nil {
		return err
	}
	q := s.db.WithContext(ctx).Model(model)
	for column, value := range filters {
		q = q.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return q.Updates(map[string]any(patch)).Error
}

func (s *Store) Insert(ctx context.Context, collection string, record any) error {
	if _, err := s.model(collection); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Table(collection).Create(record).Error
}

func (s *Store) Delete(ctx context.Context, collection string, filters store.Filters) error {
	if len(filters) == 0 {
		return ErrEmptyFilter
	}
	model, err := s.model(collection)
	if err != nil {
		return err
	}
	q := s.db.WithContext(ctx)
	for column, value := range filters {
		q = q.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return q.Delete(model).Error
}
