package user_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"lendsqr.dev/admin-api-gateway/app/domain/user"
)

type fakeGateway struct {
	mu         sync.Mutex
	users      []*user.User
	fetchErr   error
	one        map[string]*user.User
	oneErr     error
	fetchCalls int
	oneCalls   int
	block      chan struct{} // when set, FetchAll waits on it once
}

func (g *fakeGateway) FetchAll(ctx context.Context) ([]*user.User, error) {
	g.mu.Lock()
	g.fetchCalls++
	block := g.block
	g.block = nil
	users, err := g.users, g.fetchErr
	g.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (g *fakeGateway) FetchOne(ctx context.Context, id string) (*user.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.oneCalls++
	if g.oneErr != nil {
		return nil, g.oneErr
	}
	if u, ok := g.one[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, user.NewGatewayError(user.GatewayErrorNotFound, fmt.Errorf("user %s not found", id))
}

type memoryStore struct {
	mu        sync.Mutex
	byID      map[string]*user.User
	order     []string
	putAllErr error
	getAllErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byID: make(map[string]*user.User)}
}

func (m *memoryStore) put(u *user.User) {
	clone := *u
	if _, ok := m.byID[u.ID]; !ok {
		m.order = append(m.order, u.ID)
	}
	m.byID[u.ID] = &clone
}

func (m *memoryStore) Put(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(u)
	return nil
}

func (m *memoryStore) PutAll(ctx context.Context, users []*user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putAllErr != nil {
		return m.putAllErr
	}
	for _, u := range users {
		m.put(u)
	}
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (m *memoryStore) GetAll(ctx context.Context) ([]*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	out := make([]*user.User, 0, len(m.order))
	for _, id := range m.order {
		clone := *m.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func TestLoadUsersPersistsFetched(t *testing.T) {
	gateway := &fakeGateway{users: makeUsers(12)}
	store := newMemoryStore()
	svc := user.NewService(gateway, store)
	ctx := context.Background()

	users, err := svc.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 12 {
		t.Fatalf("loaded %d users, want 12", len(users))
	}
	if n, _ := store.Count(ctx); n != 12 {
		t.Fatalf("store holds %d users, want 12", n)
	}
	if snap := svc.Snapshot(); snap.Status != user.LoadSuccess {
		t.Fatalf("snapshot status = %q, want success", snap.Status)
	}
}

func TestLoadUsersFallsBackToCache(t *testing.T) {
	store := newMemoryStore()
	if err := store.PutAll(context.Background(), makeUsers(8)); err != nil {
		t.Fatal(err)
	}
	gateway := &fakeGateway{fetchErr: user.NewGatewayError(user.GatewayErrorUnavailable, errors.New("connection refused"))}
	svc := user.NewService(gateway, store)

	users, err := svc.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("expected cache fallback, got error: %v", err)
	}
	if len(users) != 8 {
		t.Fatalf("fallback returned %d users, want 8", len(users))
	}
	if snap := svc.Snapshot(); snap.Status != user.LoadSuccess {
		t.Fatalf("snapshot status = %q, want success", snap.Status)
	}
}

func TestLoadUsersFailsWithEmptyCache(t *testing.T) {
	gateway := &fakeGateway{fetchErr: user.NewGatewayError(user.GatewayErrorUnavailable, errors.New("connection refused"))}
	svc := user.NewService(gateway, newMemoryStore())

	_, err := svc.LoadUsers(context.Background())
	if err == nil {
		t.Fatal("expected error when upstream and cache are both empty")
	}
	snap := svc.Snapshot()
	if snap.Status != user.LoadError {
		t.Fatalf("snapshot status = %q, want error", snap.Status)
	}
	if snap.Message != user.FetchFailedMessage {
		t.Fatalf("snapshot message = %q", snap.Message)
	}
}

func TestLoadUsersSurvivesPersistFailure(t *testing.T) {
	store := newMemoryStore()
	store.putAllErr = errors.New("disk full")
	gateway := &fakeGateway{users: makeUsers(5)}
	svc := user.NewService(gateway, store)

	users, err := svc.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("persist failure leaked into load: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("loaded %d users, want 5", len(users))
	}
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	firstBatch := makeUsers(3)
	secondBatch := makeUsers(20)
	release := make(chan struct{})
	gateway := &fakeGateway{users: firstBatch, block: release}
	svc := user.NewService(gateway, newMemoryStore())
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.LoadUsers(ctx) // stalls in FetchAll until release
	}()

	// Wait for the first load to be in flight.
	for svc.Snapshot().Status != user.LoadLoading {
		runtime.Gosched()
	}

	gateway.mu.Lock()
	gateway.users = secondBatch
	gateway.mu.Unlock()

	users, err := svc.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(users) != 20 {
		t.Fatalf("second load returned %d users, want 20", len(users))
	}

	close(release)
	<-done

	snap := svc.Snapshot()
	if snap.Status != user.LoadSuccess || len(snap.Users) != 20 {
		t.Fatalf("stale load overwrote snapshot: status=%q users=%d", snap.Status, len(snap.Users))
	}
}

func TestGetUserCacheFirst(t *testing.T) {
	store := newMemoryStore()
	cached := user.FromRaw(user.RawUser{ID: "7"})
	if err := store.Put(context.Background(), cached); err != nil {
		t.Fatal(err)
	}
	gateway := &fakeGateway{one: map[string]*user.User{}}
	svc := user.NewService(gateway, store)

	got, err := svc.GetUser(context.Background(), "7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "7" {
		t.Fatalf("got id %q", got.ID)
	}
	if gateway.oneCalls != 0 {
		t.Fatalf("cache hit still called upstream %d times", gateway.oneCalls)
	}
}

func TestGetUserFetchesAndCachesOnMiss(t *testing.T) {
	remote := user.FromRaw(user.RawUser{ID: "55"})
	gateway := &fakeGateway{one: map[string]*user.User{"55": remote}}
	store := newMemoryStore()
	svc := user.NewService(gateway, store)
	ctx := context.Background()

	got, err := svc.GetUser(ctx, "55")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "55" {
		t.Fatalf("got id %q", got.ID)
	}
	if gateway.oneCalls != 1 {
		t.Fatalf("upstream called %d times, want 1", gateway.oneCalls)
	}

	// Second lookup is served from the cache.
	if _, err := svc.GetUser(ctx, "55"); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if gateway.oneCalls != 1 {
		t.Fatalf("cache not used on second lookup: %d upstream calls", gateway.oneCalls)
	}
}

func TestGetUserNotFound(t *testing.T) {
	gateway := &fakeGateway{one: map[string]*user.User{}}
	svc := user.NewService(gateway, newMemoryStore())

	_, err := svc.GetUser(context.Background(), "missing")
	if !user.IsGatewayNotFound(err) {
		t.Fatalf("expected not-found gateway error, got %v", err)
	}
}

func TestSetStatusPersistsAndUpdatesListing(t *testing.T) {
	gateway := &fakeGateway{users: makeUsers(10)}
	store := newMemoryStore()
	svc := user.NewService(gateway, store)
	ctx := context.Background()

	if _, err := svc.LoadUsers(ctx); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.SetStatus(ctx, "4", user.StatusBlacklisted)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != user.StatusBlacklisted {
		t.Fatalf("status = %q", updated.Status)
	}

	stored, err := store.Get(ctx, "4")
	if err != nil || stored == nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.Status != user.StatusBlacklisted {
		t.Fatalf("stored status = %q, want Blacklisted", stored.Status)
	}

	// The working collection reflects the change without a refetch.
	result, err := svc.List(ctx, user.ListQuery{Filters: user.FilterValues{Status: "Blacklisted"}})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, u := range result.Users {
		if u.ID == "4" {
			found = true
		}
	}
	if !found {
		t.Fatal("blacklisted user not visible in listing")
	}
	if gateway.fetchCalls != 1 {
		t.Fatalf("listing refetched upstream: %d calls", gateway.fetchCalls)
	}
}

func TestListReusesSnapshotUnlessRefreshed(t *testing.T) {
	gateway := &fakeGateway{users: makeUsers(30)}
	svc := user.NewService(gateway, newMemoryStore())
	ctx := context.Background()

	if _, err := svc.List(ctx, user.ListQuery{}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.List(ctx, user.ListQuery{Page: 2}); err != nil {
		t.Fatal(err)
	}
	if gateway.fetchCalls != 1 {
		t.Fatalf("plain listing refetched: %d calls", gateway.fetchCalls)
	}

	if _, err := svc.List(ctx, user.ListQuery{Refresh: true}); err != nil {
		t.Fatal(err)
	}
	if gateway.fetchCalls != 2 {
		t.Fatalf("refresh did not refetch: %d calls", gateway.fetchCalls)
	}
}

func TestListPaginatesAndFilters(t *testing.T) {
	gateway := &fakeGateway{users: makeUsers(25)}
	svc := user.NewService(gateway, newMemoryStore())
	ctx := context.Background()

	result, err := svc.List(ctx, user.ListQuery{Page: 2})
	if err != nil {
		t.Fatal(err)
	}
	if result.Page != 2 || result.TotalPages != 3 || result.TotalItems != 25 {
		t.Fatalf("result = page %d of %d, %d items", result.Page, result.TotalPages, result.TotalItems)
	}
	if result.Users[0].ID != "11" {
		t.Fatalf("page 2 starts at %s, want 11", result.Users[0].ID)
	}

	filtered, err := svc.List(ctx, user.ListQuery{Filters: user.FilterValues{Organization: "Lendsqr"}, Page: 99})
	if err != nil {
		t.Fatal(err)
	}
	if filtered.Page != filtered.TotalPages {
		t.Fatalf("overshoot page = %d, total = %d", filtered.Page, filtered.TotalPages)
	}
	for _, u := range filtered.Users {
		if u.OrgName != "Lendsqr" {
			t.Fatalf("filtered listing leaked %s", u.OrgName)
		}
	}
}

func TestStatsAndOrganizationsUseWorkingCollection(t *testing.T) {
	gateway := &fakeGateway{users: makeUsers(20)}
	svc := user.NewService(gateway, newMemoryStore())
	ctx := context.Background()

	stats, err := svc.StatsSummary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalUsers != 20 {
		t.Fatalf("totalUsers = %d", stats.TotalUsers)
	}
	if stats.UsersWithLoans != 6 || stats.UsersWithSavings != 12 {
		t.Fatalf("shares = %d/%d, want 6/12", stats.UsersWithLoans, stats.UsersWithSavings)
	}

	orgs, err := svc.OrganizationNames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(orgs) != 3 {
		t.Fatalf("organizations = %v", orgs)
	}
	if gateway.fetchCalls != 1 {
		t.Fatalf("stats/orgs refetched upstream: %d calls", gateway.fetchCalls)
	}
}

func TestGetUserDetail(t *testing.T) {
	remote := user.FromRaw(user.RawUser{ID: "1"})
	gateway := &fakeGateway{one: map[string]*user.User{"1": remote}}
	svc := user.NewService(gateway, newMemoryStore())

	detail, err := svc.GetUserDetail(context.Background(), "1")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.UserCode != "LSQFf1d" {
		t.Errorf("userCode = %q", detail.UserCode)
	}
	if detail.Tier != 2 {
		t.Errorf("tier = %d", detail.Tier)
	}
	if detail.Account.Bank != "0000000049/GTBank" {
		t.Errorf("account = %+v", detail.Account)
	}
}
