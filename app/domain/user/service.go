package user

import (
	"sync"

	"golang.org/x/net/context"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
)

// FetchFailedMessage is surfaced when neither the upstream nor the cache
// can produce any users.
const FetchFailedMessage = "Failed to fetch users. Please try again later."

type LoadStatus string

const (
	LoadIdle    LoadStatus = "idle"
	LoadLoading LoadStatus = "loading"
	LoadSuccess LoadStatus = "success"
	LoadError   LoadStatus = "error"
)

// LoadSnapshot is the current state of the working collection. Generation
// increases monotonically with every load attempt; a completed load only
// lands if no newer attempt has started since.
type LoadSnapshot struct {
	Status     LoadStatus `json:"status"`
	Users      []*User    `json:"-"`
	Message    string     `json:"message,omitempty"`
	Generation uint64     `json:"generation"`
}

type UserService struct {
	gateway Gateway
	store   CacheStore

	mu         sync.Mutex
	generation uint64
	snapshot   LoadSnapshot
}

func NewService(gateway Gateway, store CacheStore) *UserService {
	return &UserService{
		gateway:  gateway,
		store:    store,
		snapshot: LoadSnapshot{Status: LoadIdle},
	}
}

// Snapshot returns the current load state.
func (s *UserService) Snapshot() LoadSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *UserService) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snapshot = LoadSnapshot{Status: LoadLoading, Generation: s.generation}
	return s.generation
}

func (s *UserService) completeLoad(gen uint64, users []*User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer load started while this one was in flight.
		return
	}
	s.snapshot = LoadSnapshot{Status: LoadSuccess, Users: users, Generation: gen}
}

func (s *UserService) failLoad(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.snapshot = LoadSnapshot{Status: LoadError, Message: FetchFailedMessage, Generation: gen}
}

// LoadUsers refreshes the working collection: upstream first, persisting
// the result to the cache, falling back to whatever the cache holds when
// the upstream is unreachable. A persistence failure never fails the load.
func (s *UserService) LoadUsers(ctx context.Context) ([]*User, error) {
	gen := s.beginLoad()

	users, err := s.gateway.FetchAll(ctx)
	if err == nil {
		if putErr := s.store.PutAll(ctx, users); putErr != nil {
			logger.GetLogger().Errorf("failed to persist fetched users: %v", putErr)
		}
		s.completeLoad(gen, users)
		return users, nil
	}

	logger.GetLogger().Warnf("upstream fetch failed, falling back to cache: %v", err)
	cached, cacheErr := s.store.GetAll(ctx)
	if cacheErr != nil {
		logger.GetLogger().Errorf("cache read failed during fallback: %v", cacheErr)
	}
	if len(cached) > 0 {
		s.completeLoad(gen, cached)
		return cached, nil
	}

	s.failLoad(gen)
	return nil, err
}

// currentUsers reuses the last successful load unless a refresh is forced.
func (s *UserService) currentUsers(ctx context.Context, refresh bool) ([]*User, error) {
	if !refresh {
		s.mu.Lock()
		snap := s.snapshot
		s.mu.Unlock()
		if snap.Status == LoadSuccess {
			return snap.Users, nil
		}
	}
	return s.LoadUsers(ctx)
}

// GetUser resolves a single user cache-first, fetching and caching on miss.
func (s *UserService) GetUser(ctx context.Context, id string) (*User, error) {
	cached, err := s.store.Get(ctx, id)
	if err != nil {
		logger.GetLogger().Errorf("cache read failed for user %s: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	fetched, err := s.gateway.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if putErr := s.store.Put(ctx, fetched); putErr != nil {
		logger.GetLogger().Errorf("failed to cache user %s: %v", id, putErr)
	}
	return fetched, nil
}

// SetStatus overwrites the user's status and persists the whole record.
func (s *UserService) SetStatus(ctx context.Context, id string, status UserStatus) (*User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = status
	if err := s.store.Put(ctx, u); err != nil {
		return nil, err
	}
	s.replaceInSnapshot(u)
	return u, nil
}

// replaceInSnapshot swaps the updated record into the working collection so
// listings reflect the change without a refetch. Copy-on-write keeps slices
// handed to earlier readers intact.
func (s *UserService) replaceInSnapshot(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Status != LoadSuccess {
		return
	}
	users := make([]*User, len(s.snapshot.Users))
	copy(users, s.snapshot.Users)
	for i, existing := range users {
		if existing.ID == u.ID {
			users[i] = u
			break
		}
	}
	s.snapshot.Users = users
}

type ListQuery struct {
	Filters  FilterValues
	Page     int
	PageSize int
	Refresh  bool
}

type ListResult struct {
	Users       []*User     `json:"users"`
	Page        int         `json:"page"`
	PageSize    int         `json:"pageSize"`
	TotalItems  int         `json:"totalItems"`
	TotalPages  int         `json:"totalPages"`
	PageNumbers []PageToken `json:"pageNumbers"`
}

// List applies filters and pagination over the working collection.
func (s *UserService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	users, err := s.currentUsers(ctx, q.Refresh)
	if err != nil {
		return nil, err
	}

	listing := NewListing(users)
	if q.PageSize != 0 {
		listing.SetPageSize(q.PageSize)
	}
	listing.SetFilters(q.Filters)
	if q.Page > 1 {
		listing.SetPage(q.Page)
	}

	return &ListResult{
		Users:       listing.Page(),
		Page:        listing.CurrentPage(),
		PageSize:    listing.PageSize(),
		TotalItems:  listing.TotalItems(),
		TotalPages:  listing.TotalPages(),
		PageNumbers: listing.PageNumbers(),
	}, nil
}

// OrganizationNames lists the distinct organizations of the collection.
func (s *UserService) OrganizationNames(ctx context.Context) ([]string, error) {
	users, err := s.currentUsers(ctx, false)
	if err != nil {
		return nil, err
	}
	return Organizations(users), nil
}

// StatsSummary computes the dashboard counters over the collection.
func (s *UserService) StatsSummary(ctx context.Context) (*Stats, error) {
	users, err := s.currentUsers(ctx, false)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(users)
	return &stats, nil
}

// Detail is the full single-user view with its synthesized bank block.
type Detail struct {
	User     *User       `json:"user"`
	UserCode string      `json:"userCode"`
	Tier     int         `json:"tier"`
	Account  AccountInfo `json:"account"`
}

// GetUserDetail resolves a user and derives the display-only detail fields.
func (s *UserService) GetUserDetail(ctx context.Context, id string) (*Detail, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		User:     u,
		UserCode: Code(u.ID),
		Tier:     Tier(u.ID),
		Account:  Account(u.ID),
	}, nil
}
