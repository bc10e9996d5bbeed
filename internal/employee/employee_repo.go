package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByName(ctx context.Context, name string) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAllNames(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByName matches the display name exactly. Names are not unique; the
// first row in result order wins, which mirrors how the dashboard resolves
// the lookup.
func (r *repository) FindByName(ctx context.Context, name string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where(`"First_Name" = ?`, name).
		First(&empl).Error
	return &empl, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, `"AUUID" = ?`, id).Error
	return &empl, err
}

func (r *repository) FindAllNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Order(`"First_Name" ASC`).
		Pluck("First_Name", &names).Error
	return names, err
}
