package user

import (
	"sort"
	"strings"
	"time"

	"lendsqr.dev/admin-api-gateway/app/utils/functional"
)

// FilterValues holds the per-field filter criteria of the user table.
// An empty field means "do not filter on this field".
type FilterValues struct {
	Organization string `json:"organization,omitempty" form:"organization"`
	Username     string `json:"username,omitempty" form:"username"`
	Email        string `json:"email,omitempty" form:"email"`
	Date         string `json:"date,omitempty" form:"date"`
	PhoneNumber  string `json:"phoneNumber,omitempty" form:"phone_number"`
	Status       string `json:"status,omitempty" form:"status"`
}

func (f FilterValues) IsZero() bool {
	return f == FilterValues{}
}

// PageSizes is the enumerated set of allowed page sizes.
var PageSizes = []int{10, 20, 50, 100}

const DefaultPageSize = 10

func ValidPageSize(p int) bool {
	for _, allowed := range PageSizes {
		if p == allowed {
			return true
		}
	}
	return false
}

func parseDay(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Matches reports whether u passes every active filter field. Inactive
// fields never exclude a record.
func Matches(u *User, f FilterValues) bool {
	if f.Organization != "" && u.OrgName != f.Organization {
		return false
	}
	if f.Username != "" && !strings.Contains(strings.ToLower(u.UserName), strings.ToLower(f.Username)) {
		return false
	}
	if f.Email != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(f.Email)) {
		return false
	}
	if f.PhoneNumber != "" && !strings.Contains(u.PhoneNumber, f.PhoneNumber) {
		return false
	}
	if f.Status != "" && string(u.Status) != f.Status {
		return false
	}
	if f.Date != "" {
		want, okWant := parseDay(f.Date)
		got, okGot := parseDay(u.CreatedAt)
		if !okWant || !okGot || !sameCalendarDay(want, got) {
			return false
		}
	}
	return true
}

// ApplyFilter returns the subset of users passing f, preserving order.
func ApplyFilter(users []*User, f FilterValues) []*User {
	return functional.Filter(users, func(u *User) bool {
		return Matches(u, f)
	})
}

// Organizations returns the distinct orgName values of the unfiltered
// collection, sorted ascending.
func Organizations(users []*User) []string {
	orgs := functional.Distinct(functional.Map(users, func(u *User) string {
		return u.OrgName
	}))
	sort.Strings(orgs)
	return orgs
}

// PageToken is one entry of the compact pager: either a page number or an
// ellipsis gap.
type PageToken struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Listing derives the visible window of a user collection from filter and
// pagination state. It is a pure in-memory view; changing filters or the
// page size snaps the current page back to 1, page moves are clamped.
type Listing struct {
	source   []*User
	filtered []*User
	filters  FilterValues
	pageSize int
	page     int
}

func NewListing(users []*User) *Listing {
	l := &Listing{
		source:   users,
		pageSize: DefaultPageSize,
		page:     1,
	}
	l.recompute()
	return l
}

func (l *Listing) recompute() {
	l.filtered = ApplyFilter(l.source, l.filters)
}

// SetFilters replaces the filter values and resets to page 1.
func (l *Listing) SetFilters(f FilterValues) {
	l.filters = f
	l.page = 1
	l.recompute()
}

// SetPageSize switches to one of the allowed page sizes; an actual change
// resets to page 1. Sizes outside the enumerated set are ignored.
func (l *Listing) SetPageSize(p int) {
	if !ValidPageSize(p) || p == l.pageSize {
		return
	}
	l.pageSize = p
	l.page = 1
}

// SetPage moves to the requested page, clamped to [1, TotalPages].
func (l *Listing) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	if total := l.TotalPages(); p > total {
		p = total
	}
	l.page = p
}

func (l *Listing) NextPage() { l.SetPage(l.page + 1) }
func (l *Listing) PrevPage() { l.SetPage(l.page - 1) }

func (l *Listing) Filters() FilterValues { return l.filters }
func (l *Listing) CurrentPage() int      { return l.page }
func (l *Listing) PageSize() int         { return l.pageSize }
func (l *Listing) Filtered() []*User     { return l.filtered }
func (l *Listing) TotalItems() int       { return len(l.filtered) }

func (l *Listing) TotalPages() int {
	total := (len(l.filtered) + l.pageSize - 1) / l.pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// Page returns the visible slice [(page-1)*size, page*size).
func (l *Listing) Page() []*User {
	start := (l.page - 1) * l.pageSize
	if start >= len(l.filtered) {
		return []*User{}
	}
	end := start + l.pageSize
	if end > len(l.filtered) {
		end = len(l.filtered)
	}
	return l.filtered[start:end]
}

// PageNumbers builds the compact pager: every page when there are at most
// five, otherwise the first page, the current page with its immediate
// neighbours, the last page, and ellipsis gaps in between.
func (l *Listing) PageNumbers() []PageToken {
	totalPages := l.TotalPages()
	current := l.page

	var tokens []PageToken
	if totalPages <= 5 {
		for i := 1; i <= totalPages; i++ {
			tokens = append(tokens, PageToken{Page: i})
		}
		return tokens
	}

	tokens = append(tokens, PageToken{Page: 1})
	if current > 3 {
		tokens = append(tokens, PageToken{Ellipsis: true})
	}

	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > totalPages-1 {
		end = totalPages - 1
	}
	for i := start; i <= end; i++ {
		tokens = append(tokens, PageToken{Page: i})
	}

	if current < totalPages-2 {
		tokens = append(tokens, PageToken{Ellipsis: true})
	}
	tokens = append(tokens, PageToken{Page: totalPages})
	return tokens
}
