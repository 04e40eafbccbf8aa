package content

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles persistence for section field overrides
type Repository interface {
	ListBySection(ctx context.Context, section string) ([]FieldOverride, error)
	Upsert(ctx context.Context, section string, fields map[string]string, updatedBy string) error
	Delete(ctx context.Context, section, field string) error
	ListSections(ctx context.Context) ([]string, error)
	DeleteFieldsNotIn(ctx context.Context, known []string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListBySection(ctx context.Context, section string) ([]FieldOverride, error) {
	var rows []FieldOverride
	err := r.db.WithContext(ctx).
		Where("section = ?", section).
		Order("field ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Upsert(ctx context.Context, section string, fields map[string]string, updatedBy string) error {
	now := time.Now()
	rows := make([]FieldOverride, 0, len(fields))
	for field, value := range fields {
		rows = append(rows, FieldOverride{
			Section:   section,
			Field:     field,
			Value:     value,
			UpdatedBy: updatedBy,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}, {Name: "field"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).Create(&rows).Error
	})
	return mapPgError(err)
}

func (r *repository) Delete(ctx context.Context, section, field string) error {
	result := r.db.WithContext(ctx).
		Where("section = ? AND field = ?", section, field).
		Delete(&FieldOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFieldNotFound
	}
	return nil
}

func (r *repository) ListSections(ctx context.Context) ([]string, error) {
	var sections []string
	err := r.db.WithContext(ctx).
		Model(&FieldOverride{}).
		Distinct("section").
		Order("section ASC").
		Pluck("section", &sections).Error
	return sections, err
}

// DeleteFieldsNotIn removes overrides whose field key is not in known
func (r *repository) DeleteFieldsNotIn(ctx context.Context, known []string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("field NOT IN ?", known).
		Delete(&FieldOverride{})
	return result.RowsAffected, result.Error
}

func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 22001 string_data_right_truncation
		if pgErr.Code == "22001" {
			return ErrValueTooLong
		}
	}
	return err
}
