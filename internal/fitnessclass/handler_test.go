package fitnessclass

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitbook/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req CreateClassRequest) (*FitnessClass, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]FitnessClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FitnessClass), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api.RegisterValidation()

	h := NewHandler(svc)
	router := gin.New()
	router.POST("/classes/", h.CreateClass)
	router.GET("/classes/", h.ListClasses)
	return router
}

func postClass(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/classes/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateClass_Handler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req CreateClassRequest) bool {
			return req.Name == "Yoga" && *req.AvailableSlots == 0
		})).Return(&FitnessClass{
			ID: 4, Name: "Yoga", DateTime: time.Date(2024, 5, 1, 10, 0, 0, 0, ist), Instructor: "Asha", AvailableSlots: 0,
		}, nil)

		w := postClass(setupRouter(svc), `{"name":"Yoga","dateTime":"2024-05-01T10:00:00","instructor":"Asha","availableSlots":0}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":4,"name":"Yoga","dateTime":"2024-05-01T10:00:00+05:30","instructor":"Asha","availableSlots":0}`, w.Body.String())
	})

	t.Run("negative slots rejected", func(t *testing.T) {
		svc := new(MockService)

		w := postClass(setupRouter(svc), `{"name":"Yoga","dateTime":"2024-05-01T10:00:00","instructor":"Asha","availableSlots":-1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad dateTime", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, ErrInvalidDateTime)

		w := postClass(setupRouter(svc), `{"name":"Yoga","dateTime":"soon","instructor":"Asha","availableSlots":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListClasses_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything).Return([]FitnessClass{}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	failing := new(MockService)
	failing.On("List", mock.Anything).Return(nil, errors.New("boom"))

	w = httptest.NewRecorder()
	setupRouter(failing).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
