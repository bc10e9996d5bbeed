package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/georgembugua00/manager-leave/internal/employee/errors"
	"github.com/georgembugua00/manager-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmployeeNamesKey is the cache key for the dashboard's name dropdown.
const EmployeeNamesKey = "employees:names"

const employeeNamesTTL = 30 * time.Minute

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	LookupByName(ctx context.Context, name string) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Names(ctx context.Context) ([]string, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) LookupByName(ctx context.Context, name string) (EmployeeResponse, error) {
	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNameRequired
	}

	empl, err := s.repo.FindByName(ctx, name)
	if err != nil {
		s.logger.Warn("lookup employee by name failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("name", name),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Names returns every display name in ascending order. Employee rows are
// HR master data and change rarely, so the list is cached with a TTL and a
// singleflight guard collapses concurrent dashboard renders into one query.
func (s *service) Names(ctx context.Context) ([]string, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, EmployeeNamesKey).Result()
		if err == nil {
			var names []string
			if err := json.Unmarshal([]byte(cached), &names); err == nil {
				return names, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeNamesKey, func() (interface{}, error) {
		names, err := s.repo.FindAllNames(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(names); err == nil {
				s.rdb.Set(ctx, EmployeeNamesKey, jsonData, employeeNamesTTL)
			}
		}

		return names, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:   e.ID.String(),
		Name: e.Name,
	}
}
