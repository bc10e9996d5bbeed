package entitlement_test

import (
	"context"
	"testing"

	"github.com/georgembugua00/manager-leave/internal/entitlement"
	entitlementerrors "github.com/georgembugua00/manager-leave/internal/entitlement/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEntitlementRepository struct {
	findByEmployeeFn func(ctx context.Context, employeeID string) (*entitlement.Entitlement, error)
}

func (f *fakeEntitlementRepository) FindByEmployee(ctx context.Context, employeeID string) (*entitlement.Entitlement, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}

type fakeUsedDaysProvider struct {
	usedDaysFn func(ctx context.Context, employeeID, leaveType string) (int, error)
}

func (f *fakeUsedDaysProvider) UsedDays(ctx context.Context, employeeID, leaveType string) (int, error) {
	return f.usedDaysFn(ctx, employeeID, leaveType)
}

func TestEntitlementService_Get(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("returns the allotment", func(t *testing.T) {
		repo := &fakeEntitlementRepository{
			findByEmployeeFn: func(ctx context.Context, eid string) (*entitlement.Entitlement, error) {
				assert.Equal(t, employeeID.String(), eid)
				return &entitlement.Entitlement{
					EmployeeID: employeeID,
					AnnualDays: 21,
					SickDays:   14,
				}, nil
			},
		}
		svc := entitlement.NewService(repo, &fakeUsedDaysProvider{})

		resp, err := svc.Get(ctx, employeeID.String())
		assert.NoError(t, err)
		assert.Equal(t, 21, resp.AnnualDays)
		assert.Equal(t, 14, resp.SickDays)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		svc := entitlement.NewService(&fakeEntitlementRepository{}, &fakeUsedDaysProvider{})

		_, err := svc.Get(ctx, "42")
		assert.ErrorIs(t, err, entitlementerrors.ErrInvalidEmployeeID)
	})

	t.Run("missing allotment surfaces not found", func(t *testing.T) {
		repo := &fakeEntitlementRepository{
			findByEmployeeFn: func(ctx context.Context, eid string) (*entitlement.Entitlement, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := entitlement.NewService(repo, &fakeUsedDaysProvider{})

		_, err := svc.Get(ctx, employeeID.String())
		assert.ErrorIs(t, err, entitlementerrors.ErrEntitlementNotFound)
	})
}

func TestEntitlementService_Balance(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	repo := &fakeEntitlementRepository{
		findByEmployeeFn: func(ctx context.Context, eid string) (*entitlement.Entitlement, error) {
			return &entitlement.Entitlement{
				EmployeeID:        employeeID,
				AnnualDays:        21,
				SickDays:          14,
				MaternityDays:     90,
				PaternityDays:     14,
				StudyDays:         10,
				CompassionateDays: 5,
			}, nil
		},
	}

	t.Run("computes remaining per paid type", func(t *testing.T) {
		used := map[string]int{"Annual": 6, "Sick": 2}
		provider := &fakeUsedDaysProvider{
			usedDaysFn: func(ctx context.Context, eid, leaveType string) (int, error) {
				return used[leaveType], nil
			},
		}
		svc := entitlement.NewService(repo, provider)

		resp, err := svc.Balance(ctx, employeeID.String())
		require.NoError(t, err)
		require.Len(t, resp.Balances, 6)

		byType := map[string]entitlement.TypeBalance{}
		for _, b := range resp.Balances {
			byType[b.LeaveType] = b
		}

		assert.Equal(t, 15, byType["Annual"].Remaining)
		assert.Equal(t, 12, byType["Sick"].Remaining)
		assert.Equal(t, 90, byType["Maternity"].Remaining)

		// Unpaid has no allotment and never appears
		_, ok := byType["Unpaid"]
		assert.False(t, ok)
	})

	t.Run("remaining can go negative", func(t *testing.T) {
		provider := &fakeUsedDaysProvider{
			usedDaysFn: func(ctx context.Context, eid, leaveType string) (int, error) {
				if leaveType == "Annual" {
					return 30, nil
				}
				return 0, nil
			},
		}
		svc := entitlement.NewService(repo, provider)

		resp, err := svc.Balance(ctx, employeeID.String())
		require.NoError(t, err)
		assert.Equal(t, -9, resp.Balances[0].Remaining)
	})

	t.Run("used days failure aborts the report", func(t *testing.T) {
		provider := &fakeUsedDaysProvider{
			usedDaysFn: func(ctx context.Context, eid, leaveType string) (int, error) {
				return 0, assert.AnError
			},
		}
		svc := entitlement.NewService(repo, provider)

		_, err := svc.Balance(ctx, employeeID.String())
		assert.Error(t, err)
	})
}
