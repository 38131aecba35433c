package dbschema

import (
	"encoding/json"

	"gorm.io/datatypes"
	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User is a cached directory record. ExternalID is the upstream identifier
// and the upsert key; the nested blocks are stored as jsonb so the record
// round-trips without schema churn.
type User struct {
	BaseModel
	ExternalID             string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	OrgName                string         `gorm:"type:varchar(255);not null;index"`
	UserName               string         `gorm:"type:varchar(255);not null"`
	Email                  string         `gorm:"type:varchar(255);not null"`
	PhoneNumber            string         `gorm:"type:varchar(50);not null"`
	RecordCreatedAt        string         `gorm:"type:varchar(50);not null"`
	Status                 string         `gorm:"type:varchar(20);not null;index"`
	PersonalInfo           datatypes.JSON `gorm:"type:jsonb;not null"`
	EducationAndEmployment datatypes.JSON `gorm:"type:jsonb;not null"`
	Socials                datatypes.JSON `gorm:"type:jsonb;not null"`
	Guarantor              datatypes.JSON `gorm:"type:jsonb;not null"`
}

func NewSchemaUser(u *user.User) (*User, error) {
	personalInfo, err := json.Marshal(u.PersonalInfo)
	if err != nil {
		return nil, err
	}
	education, err := json.Marshal(u.EducationAndEmployment)
	if err != nil {
		return nil, err
	}
	socials, err := json.Marshal(u.Socials)
	if err != nil {
		return nil, err
	}
	guarantor, err := json.Marshal(u.Guarantor)
	if err != nil {
		return nil, err
	}
	return &User{
		ExternalID:             u.ID,
		OrgName:                u.OrgName,
		UserName:               u.UserName,
		Email:                  u.Email,
		PhoneNumber:            u.PhoneNumber,
		RecordCreatedAt:        u.CreatedAt,
		Status:                 string(u.Status),
		PersonalInfo:           datatypes.JSON(personalInfo),
		EducationAndEmployment: datatypes.JSON(education),
		Socials:                datatypes.JSON(socials),
		Guarantor:              datatypes.JSON(guarantor),
	}, nil
}

func (u *User) EtoD() (*user.User, error) {
	result := &user.User{
		ID:          u.ExternalID,
		OrgName:     u.OrgName,
		UserName:    u.UserName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.RecordCreatedAt,
		Status:      user.UserStatus(u.Status),
	}
	if err := json.Unmarshal(u.PersonalInfo, &result.PersonalInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(u.EducationAndEmployment, &result.EducationAndEmployment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(u.Socials, &result.Socials); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(u.Guarantor, &result.Guarantor); err != nil {
		return nil, err
	}
	return result, nil
}
