package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/georgembugua00/manager-leave/internal/employee"
	employeeerrors "github.com/georgembugua00/manager-leave/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	lookupByNameFn func(ctx context.Context, name string) (employee.EmployeeResponse, error)
	getByIDFn      func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	namesFn        func(ctx context.Context) ([]string, error)
}

func (f *fakeEmployeeService) LookupByName(ctx context.Context, name string) (employee.EmployeeResponse, error) {
	return f.lookupByNameFn(ctx, name)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Names(ctx context.Context) ([]string, error) {
	return f.namesFn(ctx)
}

type employeeEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupEmployeeRouter(t *testing.T, svc *fakeEmployeeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	employee.RegisterRoutes(router.Group("/api/v1"), employee.NewHandler(svc))
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, employeeEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env employeeEnvelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestEmployeeHandler_Names(t *testing.T) {
	svc := &fakeEmployeeService{
		namesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Jane", "Omar"}, nil
		},
	}
	router := setupEmployeeRouter(t, svc)

	rec, env := doGet(t, router, "/api/v1/employees/names")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Ok)

	var names []string
	assert.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"Jane", "Omar"}, names)
}

func TestEmployeeHandler_LookupByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			lookupByNameFn: func(ctx context.Context, name string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Jane", name)
				return employee.EmployeeResponse{ID: id, Name: "Jane"}, nil
			},
		}
		router := setupEmployeeRouter(t, svc)

		rec, env := doGet(t, router, "/api/v1/employees/by-name/Jane")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, id, resp.ID)
	})

	t.Run("unknown name answers 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			lookupByNameFn: func(ctx context.Context, name string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		router := setupEmployeeRouter(t, svc)

		rec, env := doGet(t, router, "/api/v1/employees/by-name/Nobody")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})
}
