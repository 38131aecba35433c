package user

import (
	"context"
)

type UserStatus string

const (
	StatusActive      UserStatus = "Active"
	StatusInactive    UserStatus = "Inactive"
	StatusPending     UserStatus = "Pending"
	StatusBlacklisted UserStatus = "Blacklisted"
)

// Statuses lists every status in the order the upstream synthesis uses.
var Statuses = []UserStatus{StatusActive, StatusInactive, StatusPending, StatusBlacklisted}

type PersonalInfo struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	BVN             string `json:"bvn"`
	Gender          string `json:"gender"`
	MaritalStatus   string `json:"maritalStatus"`
	Children        string `json:"children"`
	TypeOfResidence string `json:"typeOfResidence"`
}

type EducationAndEmployment struct {
	LevelOfEducation     string   `json:"levelOfEducation"`
	EmploymentStatus     string   `json:"employmentStatus"`
	SectorOfEmployment   string   `json:"sectorOfEmployment"`
	DurationOfEmployment string   `json:"durationOfEmployment"`
	OfficeEmail          string   `json:"officeEmail"`
	MonthlyIncome        []string `json:"monthlyIncome"`
	LoanRepayment        string   `json:"loanRepayment"`
}

type Socials struct {
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

type Guarantor struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// User is the canonical, fully-populated record. ID is the upstream
// identifier and the sole cache key; it never changes once assigned.
type User struct {
	ID                     string                 `json:"id"`
	OrgName                string                 `json:"orgName"`
	UserName               string                 `json:"userName"`
	Email                  string                 `json:"email"`
	PhoneNumber            string                 `json:"phoneNumber"`
	CreatedAt              string                 `json:"createdAt"`
	Status                 UserStatus             `json:"status"`
	PersonalInfo           PersonalInfo           `json:"personalInfo"`
	EducationAndEmployment EducationAndEmployment `json:"educationAndEmployment"`
	Socials                Socials                `json:"socials"`
	Guarantor              Guarantor              `json:"guarantor"`
}

// CacheStore is the durable user cache keyed by User.ID.
// Get returns (nil, nil) when the record is absent; absence is not an error.
// PutAll commits the whole batch in one transaction or not at all.
type CacheStore interface {
	Put(ctx context.Context, u *User) error
	PutAll(ctx context.Context, users []*User) error
	Get(ctx context.Context, id string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}

// Gateway fetches canonical users from the upstream directory API.
type Gateway interface {
	FetchAll(ctx context.Context) ([]*User, error)
	FetchOne(ctx context.Context, id string) (*User, error)
}
