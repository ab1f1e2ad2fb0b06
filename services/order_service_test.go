package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"
	"github.com/Adarshjain3011/LearnSphere/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mock course repository ---

type mockCourseRepo struct {
	mu       sync.Mutex
	courses  map[string]*models.Course
	enrolled map[string]map[string]bool // courseID -> userID set
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses:  make(map[string]*models.Course),
		enrolled: make(map[string]map[string]bool),
	}
}

func (m *mockCourseRepo) addCourse(id, name string, price float64) {
	m.courses[id] = &models.Course{ID: id, CourseName: name, Price: price, Published: true}
}

func (m *mockCourseRepo) markEnrolled(courseID, userID string) {
	if m.enrolled[courseID] == nil {
		m.enrolled[courseID] = make(map[string]bool)
	}
	m.enrolled[courseID][userID] = true
}

func (m *mockCourseRepo) FindByID(_ context.Context, id string) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	course, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return course, nil
}

func (m *mockCourseRepo) IsUserEnrolled(_ context.Context, courseID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enrolled[courseID][userID], nil
}

func (m *mockCourseRepo) ListPublished(_ context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) Create(_ context.Context, course *models.Course) error {
	m.courses[course.ID] = course
	return nil
}

var _ repository.CourseRepository = (*mockCourseRepo)(nil)

// --- Mock gateway ---

type mockGateway struct {
	calls []*services.OrderRequest
	err   error
}

func (m *mockGateway) CreateOrder(_ context.Context, req *services.OrderRequest) (*models.Order, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &models.Order{
		ID:       "order_mock_1",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	}, nil
}

func newOrderService(repo *mockCourseRepo, gw *mockGateway) services.OrderService {
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(repo, gw, logger)
}

// --- Tests ---

func TestCreateOrder_ComputesMinorUnits(t *testing.T) {
	repo := newMockCourseRepo()
	repo.addCourse("C1", "Go from Scratch", 500)
	gw := &mockGateway{}
	svc := newOrderService(repo, gw)

	order, svcErr := svc.CreateOrder(context.Background(), []string{"C1"}, "U1")
	assert.Nil(t, svcErr)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, `["C1"]`, order.Notes[models.NotesCoursesKey])
	assert.Equal(t, "U1", order.Notes[models.NotesUserIDKey])
	assert.NotEmpty(t, order.Receipt)
}

func TestCreateOrder_SumsMultipleCourses(t *testing.T) {
	repo := newMockCourseRepo()
	repo.addCourse("C1", "Go from Scratch", 499.50)
	repo.addCourse("C2", "Distributed Systems", 999)
	gw := &mockGateway{}
	svc := newOrderService(repo, gw)

	order, svcErr := svc.CreateOrder(context.Background(), []string{"C1", "C2"}, "U1")
	assert.Nil(t, svcErr)
	assert.Equal(t, int64(149850), order.Amount)
}

func TestCreateOrder_EmptyCourseList(t *testing.T) {
	svc := newOrderService(newMockCourseRepo(), &mockGateway{})

	_, svcErr := svc.CreateOrder(context.Background(), nil, "U1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateOrder_CourseNotFound(t *testing.T) {
	repo := newMockCourseRepo()
	repo.addCourse("C1", "Go from Scratch", 500)
	gw := &mockGateway{}
	svc := newOrderService(repo, gw)

	_, svcErr := svc.CreateOrder(context.Background(), []string{"C1", "missing"}, "U1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, "missing")
	// No partial order for a mixed valid/invalid list.
	assert.Empty(t, gw.calls)
}

func TestCreateOrder_AlreadyEnrolledBeforeGateway(t *testing.T) {
	repo := newMockCourseRepo()
	repo.addCourse("C1", "Go from Scratch", 500)
	repo.addCourse("C2", "Distributed Systems", 999)
	repo.markEnrolled("C2", "U1")
	gw := &mockGateway{}
	svc := newOrderService(repo, gw)

	_, svcErr := svc.CreateOrder(context.Background(), []string{"C1", "C2"}, "U1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Empty(t, gw.calls)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	repo := newMockCourseRepo()
	repo.addCourse("C1", "Go from Scratch", 500)
	gw := &mockGateway{err: errors.New("gateway down")}
	svc := newOrderService(repo, gw)

	_, svcErr := svc.CreateOrder(context.Background(), []string{"C1"}, "U1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	// Internals are not leaked to the caller.
	assert.NotContains(t, svcErr.Message, "gateway down")
}
