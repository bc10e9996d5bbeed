package entitlement

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=entitlement_repo.go -destination=mock/entitlement_repo_mock.go -package=mock
type Repository interface {
	FindByEmployee(ctx context.Context, employeeID string) (*Entitlement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*Entitlement, error) {
	var ent Entitlement
	err := r.db.WithContext(ctx).
		First(&ent, "employee_id = ?", employeeID).Error
	return &ent, err
}
