package entitlement

import (
	"context"
	"errors"
	"net/http"
	"strings"

	entitlementerrors "github.com/georgembugua00/manager-leave/internal/entitlement/errors"
	"github.com/georgembugua00/manager-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// paidLeaveTypes are the categories that carry an allotment; Unpaid is
// deliberately absent.
var paidLeaveTypes = []string{
	"Annual", "Sick", "Maternity", "Paternity", "Study", "Compassionate",
}

// UsedDaysProvider reports approved leave consumption; satisfied by the
// leave service.
type UsedDaysProvider interface {
	UsedDays(ctx context.Context, employeeID, leaveType string) (int, error)
}

//go:generate mockgen -source=entitlement_service.go -destination=mock/entitlement_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, employeeID string) (EntitlementResponse, error)
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}

type service struct {
	repo     Repository
	usedDays UsedDaysProvider
	logger   *zap.Logger
}

func NewService(repo Repository, usedDays UsedDaysProvider, logger ...*zap.Logger) Service {
	l := zap.L().Named("entitlement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entitlement.service")
	}
	return &service{repo: repo, usedDays: usedDays, logger: l}
}

func (s *service) Get(ctx context.Context, employeeID string) (EntitlementResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EntitlementResponse{}, entitlementerrors.ErrInvalidEmployeeID
	}

	ent, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return EntitlementResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*ent), nil
}

// Balance pairs each paid leave type's allotment with the days already
// consumed by approved requests. Remaining can go negative when HR approves
// past the allotment; this service reports, it does not enforce.
func (s *service) Balance(ctx context.Context, employeeID string) (BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, entitlementerrors.ErrInvalidEmployeeID
	}

	ent, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}

	balances := make([]TypeBalance, 0, len(paidLeaveTypes))
	for _, leaveType := range paidLeaveTypes {
		entitled, _ := ent.DaysFor(leaveType)

		used, err := s.usedDays.UsedDays(ctx, employeeID, leaveType)
		if err != nil {
			s.logger.Warn("balance used days lookup failed",
				zap.String("employee_id", employeeID),
				zap.String("leave_type", leaveType),
				zap.Error(err),
			)
			return BalanceResponse{}, err
		}

		balances = append(balances, TypeBalance{
			LeaveType: leaveType,
			Entitled:  entitled,
			Used:      used,
			Remaining: entitled - used,
		})
	}

	return BalanceResponse{
		EmployeeID: employeeID,
		Balances:   balances,
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entitlementerrors.ErrEntitlementNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && !strings.HasPrefix(pgErr.Code, "08") {
		return apperror.Wrap(err,
			apperror.CodeInternalError,
			"An unexpected error occurred",
			http.StatusInternalServerError,
		)
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"Storage is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
}

func mapToResponse(e Entitlement) EntitlementResponse {
	return EntitlementResponse{
		EmployeeID:        e.EmployeeID.String(),
		AnnualDays:        e.AnnualDays,
		SickDays:          e.SickDays,
		MaternityDays:     e.MaternityDays,
		PaternityDays:     e.PaternityDays,
		StudyDays:         e.StudyDays,
		CompassionateDays: e.CompassionateDays,
	}
}
