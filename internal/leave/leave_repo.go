package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindLatest(ctx context.Context) (*LeaveRequest, error)
	FindFiltered(ctx context.Context, f TeamFilter) ([]LeaveRequest, error)
	FindApprovedByEmployee(ctx context.Context, employeeID, leaveType string) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns the gorm handle, rebound onto the pending transaction when
// one was attached via WithTx.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db = db.Session(&gorm.Session{NewDB: true}).WithContext(ctx)
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		First(&l, `"AUUID" = ?`, id).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

// FindByStatus preloads the employee so list views can show the requester's
// name; a dangling employee reference leaves Employee nil instead of
// failing the query.
func (r *repository) FindByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Where("status = ?", status).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindLatest(ctx context.Context) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Order("created_at DESC").
		First(&l).Error
	return &l, err
}

func (r *repository) FindFiltered(ctx context.Context, f TeamFilter) ([]LeaveRequest, error) {
	q := r.conn(ctx).
		Model(&LeaveRequest{}).
		Preload("Employee")

	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if len(f.LeaveTypes) > 0 {
		q = q.Where("leave_type IN ?", f.LeaveTypes)
	}
	if f.EmployeeName != "" {
		q = q.Joins(`LEFT JOIN employee_table ON employee_table."AUUID" = off_roll_leave.employee_id`).
			Where(`employee_table."First_Name" = ?`, f.EmployeeName)
	}

	var leaves []LeaveRequest
	err := q.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID, leaveType string) ([]LeaveRequest, error) {
	q := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved)

	if leaveType != "" {
		q = q.Where("leave_type = ?", leaveType)
	}

	var leaves []LeaveRequest
	err := q.Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Save(l).Error
}
