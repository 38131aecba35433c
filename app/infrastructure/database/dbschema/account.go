package dbschema

import (
	"lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Account{})
}

type Account struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PublicID     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Enabled      bool
	PasswordHash *string `gorm:"type:text"`
}

func NewSchemaAccount(a *admin.Account) *Account {
	var passwordHash *string
	if a.PasswordHash != "" {
		passwordHash = &a.PasswordHash
	}
	return &Account{
		BaseModel: BaseModel{
			ID: a.ID,
		},
		Name:         a.Name,
		Email:        a.Email,
		PublicID:     a.PublicID,
		Enabled:      a.Enabled,
		PasswordHash: passwordHash,
	}
}

func (a *Account) EtoD() *admin.Account {
	passwordHash := ""
	if a.PasswordHash != nil {
		passwordHash = *a.PasswordHash
	}
	return &admin.Account{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PublicID:     a.PublicID,
		Enabled:      a.Enabled,
		PasswordHash: passwordHash,
		CreatedAt:    a.CreatedAt,
	}
}
