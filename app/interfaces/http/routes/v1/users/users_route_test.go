package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/domain/auth"
	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

type fakeGateway struct {
	mu       sync.Mutex
	users    []*user.User
	fetchErr error
}

func (g *fakeGateway) FetchAll(ctx context.Context) ([]*user.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	out := make([]*user.User, len(g.users))
	for i, u := range g.users {
		clone := *u
		out[i] = &clone
	}
	return out, nil
}

func (g *fakeGateway) FetchOne(ctx context.Context, id string) (*user.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	for _, u := range g.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.NewGatewayError(user.GatewayErrorNotFound, fmt.Errorf("no user %q", id))
}

type memoryStore struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*user.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byID: make(map[string]*user.User)}
}

func (s *memoryStore) Put(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	clone := *u
	s.byID[u.ID] = &clone
	return nil
}

func (s *memoryStore) PutAll(ctx context.Context, users []*user.User) error {
	for _, u := range users {
		if err := s.Put(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (s *memoryStore) GetAll(ctx context.Context) ([]*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*user.User, 0, len(s.order))
	for _, id := range s.order {
		clone := *s.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (s *memoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.order)), nil
}

type memoryAccountRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*admin.Account
}

func (m *memoryAccountRepo) Create(ctx context.Context, a *admin.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID == nil {
		m.byID = make(map[uint]*admin.Account)
	}
	m.nextID++
	clone := *a
	clone.ID = m.nextID
	m.byID[clone.ID] = &clone
	*a = clone
	return nil
}

func (m *memoryAccountRepo) Update(ctx context.Context, a *admin.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *a
	m.byID[a.ID] = &clone
	return nil
}

func (m *memoryAccountRepo) FindFirst(ctx context.Context, filter admin.AccountFilter) (*admin.Account, error) {
	items, err := m.FindByFilter(ctx, filter)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return items[0], nil
}

func (m *memoryAccountRepo) FindByFilter(ctx context.Context, filter admin.AccountFilter) ([]*admin.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matches []*admin.Account
	for _, entry := range m.byID {
		if filter.Email != nil && !strings.EqualFold(entry.Email, *filter.Email) {
			continue
		}
		if filter.PublicID != nil && entry.PublicID != *filter.PublicID {
			continue
		}
		clone := *entry
		matches = append(matches, &clone)
	}
	return matches, nil
}

func makeUsers(n int) []*user.User {
	orgs := []string{"Lendsqr", "Irorun", "Lendstar"}
	out := make([]*user.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &user.User{
			ID:          fmt.Sprintf("%d", i+1),
			OrgName:     orgs[i%len(orgs)],
			UserName:    fmt.Sprintf("Adedeji%d", i+1),
			Email:       fmt.Sprintf("adedeji%d@lendsqr.com", i+1),
			PhoneNumber: fmt.Sprintf("080%08d", i+1),
			CreatedAt:   fmt.Sprintf("2020-04-%02dT10:00:00.000Z", i%28+1),
			Status:      user.Statuses[i%len(user.Statuses)],
		})
	}
	return out
}

type routeFixture struct {
	engine  *gin.Engine
	gateway *fakeGateway
	store   *memoryStore
	token   string
}

func newRouteFixture(t *testing.T, users []*user.User) *routeFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	environment_variables.EnvironmentVariables.JWT_SECRET = []byte("test-secret")

	gateway := &fakeGateway{users: users}
	store := newMemoryStore()
	userService := user.NewService(gateway, store)

	repo := &memoryAccountRepo{}
	adminService := admin.NewService(repo)
	authService := auth.NewAuthService(adminService, nil)

	account, err := adminService.RegisterAccount(context.Background(), &admin.Account{
		Name:    "Admin",
		Email:   "owner@example.com",
		Enabled: true,
	})
	if err != nil {
		t.Fatalf("register account: %v", err)
	}

	token, err := auth.CreateJwtSignedString(auth.AdminClaim{
		Email:     account.Email,
		Name:      account.Name,
		ID:        account.PublicID,
		SessionID: "sess_test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   account.Email,
		},
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	engine := gin.New()
	NewUsersRoute(userService, authService).RegisterRouter(engine.Group("/v1"))
	return &routeFixture{engine: engine, gateway: gateway, store: store, token: token}
}

func (f *routeFixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	recorder := httptest.NewRecorder()
	f.engine.ServeHTTP(recorder, req)
	return recorder
}

type listEnvelope struct {
	Status string          `json:"status"`
	Result user.ListResult `json:"result"`
}

func TestListUsers(t *testing.T) {
	fixture := newRouteFixture(t, makeUsers(25))

	t.Run("default page", func(t *testing.T) {
		recorder := fixture.do(http.MethodGet, "/v1/users")
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}
		var envelope listEnvelope
		if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Status != "ok" {
			t.Fatalf("status = %q", envelope.Status)
		}
		result := envelope.Result
		if result.TotalItems != 25 || result.TotalPages != 3 || result.Page != 1 {
			t.Fatalf("unexpected pagination: %+v", result)
		}
		if len(result.Users) != 10 || result.Users[0].ID != "1" {
			t.Fatalf("unexpected first page: %d users", len(result.Users))
		}
	})

	t.Run("second page", func(t *testing.T) {
		recorder := fixture.do(http.MethodGet, "/v1/users?page=2")
		var envelope listEnvelope
		if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Result.Page != 2 || envelope.Result.Users[0].ID != "11" {
			t.Fatalf("unexpected second page: %+v", envelope.Result)
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		recorder := fixture.do(http.MethodGet, "/v1/users?status=Active&page_size=50")
		var envelope listEnvelope
		if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Result.TotalItems != 7 {
			t.Fatalf("expected 7 active users, got %d", envelope.Result.TotalItems)
		}
		for _, u := range envelope.Result.Users {
			if u.Status != user.StatusActive {
				t.Fatalf("user %s has status %s", u.ID, u.Status)
			}
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		recorder := fixture.do(http.MethodGet, "/v1/users?page_size=33")
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		recorder := fixture.do(http.MethodGet, "/v1/users?status=Frozen")
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		recorder := httptest.NewRecorder()
		fixture.engine.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", recorder.Code)
		}
	})
}

func TestListUsersFallsBackToCache(t *testing.T) {
	fixture := newRouteFixture(t, makeUsers(5))

	// Warm the working collection and the durable cache.
	if recorder := fixture.do(http.MethodGet, "/v1/users"); recorder.Code != http.StatusOK {
		t.Fatalf("warmup failed: %d", recorder.Code)
	}

	fixture.gateway.mu.Lock()
	fixture.gateway.fetchErr = user.NewGatewayError(user.GatewayErrorUnavailable, errors.New("directory down"))
	fixture.gateway.mu.Unlock()

	recorder := fixture.do(http.MethodGet, "/v1/users?refresh=true")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected cached 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var envelope listEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Result.TotalItems != 5 {
		t.Fatalf("expected 5 cached users, got %d", envelope.Result.TotalItems)
	}
}

func TestListUsersUnavailableWithEmptyCache(t *testing.T) {
	fixture := newRouteFixture(t, nil)
	fixture.gateway.fetchErr = user.NewGatewayError(user.GatewayErrorUnavailable, errors.New("directory down"))

	recorder := fixture.do(http.MethodGet, "/v1/users")
	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", recorder.Code)
	}
	var response struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Error != user.FetchFailedMessage {
		t.Fatalf("error = %q", response.Error)
	}
}

func TestGetUserDetail(t *testing.T) {
	fixture := newRouteFixture(t, makeUsers(3))

	recorder := fixture.do(http.MethodGet, "/v1/users/2")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var envelope struct {
		Result user.Detail `json:"result"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Result.User == nil || envelope.Result.User.ID != "2" {
		t.Fatalf("unexpected detail user: %+v", envelope.Result.User)
	}
	if envelope.Result.UserCode == "" || envelope.Result.Tier < 1 || envelope.Result.Tier > 3 {
		t.Fatalf("derived fields missing: %+v", envelope.Result)
	}

	if recorder := fixture.do(http.MethodGet, "/v1/users/999"); recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", recorder.Code)
	}
}

func TestBlacklistAndActivateUser(t *testing.T) {
	fixture := newRouteFixture(t, makeUsers(3))

	recorder := fixture.do(http.MethodPost, "/v1/users/1/blacklist")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var envelope struct {
		Result user.User `json:"result"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Result.Status != user.StatusBlacklisted {
		t.Fatalf("status = %s after blacklist", envelope.Result.Status)
	}

	persisted, err := fixture.store.Get(context.Background(), "1")
	if err != nil || persisted == nil {
		t.Fatalf("blacklisted user not persisted: %v", err)
	}
	if persisted.Status != user.StatusBlacklisted {
		t.Fatalf("persisted status = %s", persisted.Status)
	}

	if recorder := fixture.do(http.MethodPost, "/v1/users/1/activate"); recorder.Code != http.StatusOK {
		t.Fatalf("activate failed: %d", recorder.Code)
	}
	persisted, _ = fixture.store.Get(context.Background(), "1")
	if persisted.Status != user.StatusActive {
		t.Fatalf("persisted status = %s after activate", persisted.Status)
	}
}

func TestGetOrganizationsAndStats(t *testing.T) {
	fixture := newRouteFixture(t, makeUsers(9))

	recorder := fixture.do(http.MethodGet, "/v1/users/organizations")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var orgs struct {
		Result []string `json:"result"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &orgs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"Irorun", "Lendsqr", "Lendstar"}
	if len(orgs.Result) != len(want) {
		t.Fatalf("organizations = %v", orgs.Result)
	}
	for i, org := range want {
		if orgs.Result[i] != org {
			t.Fatalf("organizations = %v, want %v", orgs.Result, want)
		}
	}

	recorder = fixture.do(http.MethodGet, "/v1/users/stats")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var stats struct {
		Result user.Stats `json:"result"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.Result.TotalUsers != 9 || stats.Result.ActiveUsers != 3 {
		t.Fatalf("unexpected stats: %+v", stats.Result)
	}
}
