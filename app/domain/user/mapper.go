package user

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf16"

	"lendsqr.dev/admin-api-gateway/app/utils/money"
)

// RawUser is the record shape the upstream directory API returns. Everything
// except the id may be missing; absent fields are synthesized from the id.
type RawUser struct {
	ID          string `json:"id"`
	OrgName     string `json:"orgName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   string `json:"createdAt"`
}

// Fixed value lists the synthesis indexes into. Order matters: changing it
// changes every derived record.
var (
	genders            = []string{"Male", "Female"}
	maritalStatuses    = []string{"Single", "Married", "Divorced", "Widowed"}
	childrenOptions    = []string{"None", "1", "2", "3", "4", "5+"}
	residenceTypes     = []string{"Parent's Apartment", "Personal Apartment", "Rented Apartment", "Shared Apartment"}
	educationLevels    = []string{"B.Sc", "M.Sc", "HND", "PhD", "OND"}
	employmentStatuses = []string{"Employed", "Self-Employed", "Unemployed", "Student"}
	sectors            = []string{"FinTech", "Agriculture", "Technology", "Education", "Healthcare", "Real Estate", "Oil and Gas", "Entertainment"}
	durations          = []string{"1 year", "2 years", "3 years", "5 years", "10+ years"}
	guarantorFirsts    = []string{"Adebayo", "Chinedu", "Funke", "Oluwaseun", "Ngozi", "Ibrahim", "Temitope", "Amara", "Emeka", "Yetunde"}
	guarantorLasts     = []string{"Okonkwo", "Adeyemi", "Balogun", "Nwosu", "Akinola", "Obi", "Mohammed", "Eze", "Okafor", "Adesanya"}
	relationships      = []string{"Parent", "Sibling", "Friend", "Colleague", "Spouse"}
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Seed derives the synthesis seed from an id: the classic polynomial rolling
// hash h = h*31 + c over the id's UTF-16 code units, wrapped to a signed
// 32-bit integer, absolute value widened to int64. The explicit int32
// arithmetic matters; the derived fields must stay stable across releases.
func Seed(id string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = (h << 5) - h + int32(c)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

func pickFrom(list []string, seed int64) string {
	return list[seed%int64(len(list))]
}

// padLeftSlice zero-pads s on the left to at least width digits and keeps
// the first width characters.
func padLeftSlice(s string, width int) string {
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s[:width]
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FromRaw converts a raw upstream record into a canonical User. Every field
// the upstream omits is a pure function of the id, so mapping the same raw
// input twice yields byte-identical output.
func FromRaw(raw RawUser) *User {
	id := raw.ID
	seed := Seed(id)

	status := Statuses[seed%int64(len(Statuses))]

	fullName := raw.UserName
	if fullName == "" {
		fullName = fmt.Sprintf("User %s", id)
	}
	phone := raw.PhoneNumber
	if phone == "" {
		phone = "080" + padLeftSlice(strconv.FormatInt(seed, 10), 8)
	}
	email := raw.Email
	if email == "" {
		email = fmt.Sprintf("user%s@lendsqr.com", id)
	}

	personal := PersonalInfo{
		FullName:        fullName,
		PhoneNumber:     phone,
		Email:           email,
		BVN:             padLeftSlice(strconv.FormatInt(seed, 10), 11),
		Gender:          pickFrom(genders, seed),
		MaritalStatus:   pickFrom(maritalStatuses, seed+1),
		Children:        pickFrom(childrenOptions, seed+2),
		TypeOfResidence: pickFrom(residenceTypes, seed+3),
	}

	lowerIncome := ((seed % 8) + 1) * 50000
	upperIncome := lowerIncome + ((seed%5)+1)*100000

	education := EducationAndEmployment{
		LevelOfEducation:     pickFrom(educationLevels, seed+4),
		EmploymentStatus:     pickFrom(employmentStatuses, seed+5),
		SectorOfEmployment:   pickFrom(sectors, seed+6),
		DurationOfEmployment: pickFrom(durations, seed+7),
		OfficeEmail:          fmt.Sprintf("office.%s@lendsqr.com", id),
		MonthlyIncome:        []string{money.Naira(lowerIncome), money.Naira(upperIncome)},
		LoanRepayment:        money.NairaPlain(((seed % 20) + 1) * 5000),
	}

	userName := raw.UserName
	if userName == "" {
		userName = "user" + id
	}
	handle := strings.ToLower(stripSpaces(userName))

	socials := Socials{
		Twitter:   "@" + handle,
		Facebook:  handle,
		Instagram: "@" + handle,
	}

	guarantorFirst := pickFrom(guarantorFirsts, seed+8)
	guarantorLast := pickFrom(guarantorLasts, seed+9)

	guarantor := Guarantor{
		FullName:     guarantorFirst + " " + guarantorLast,
		PhoneNumber:  "081" + padLeftSlice(strconv.FormatInt(seed+99, 10), 8),
		Email:        strings.ToLower(guarantorFirst) + "." + strings.ToLower(guarantorLast) + "@gmail.com",
		Relationship: pickFrom(relationships, seed+10),
	}

	orgName := raw.OrgName
	if orgName == "" {
		orgName = pickFrom(sectors, seed+11)
	}
	createdAt := raw.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(isoMillis)
	}

	return &User{
		ID:                     id,
		OrgName:                orgName,
		UserName:               userName,
		Email:                  email,
		PhoneNumber:            phone,
		CreatedAt:              createdAt,
		Status:                 status,
		PersonalInfo:           personal,
		EducationAndEmployment: education,
		Socials:                socials,
		Guarantor:              guarantor,
	}
}
