package accountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/dbschema"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/transaction"
	"lendsqr.dev/admin-api-gateway/app/utils/functional"
)

type AccountGormRepository struct {
	db *transaction.Database
}

var _ domain.AccountRepository = (*AccountGormRepository)(nil)

func NewAccountGormRepository(db *transaction.Database) domain.AccountRepository {
	return &AccountGormRepository{
		db: db,
	}
}

func (r *AccountGormRepository) Create(ctx context.Context, a *domain.Account) error {
	model := dbschema.NewSchemaAccount(a)
	tx := r.db.GetTx(ctx).WithContext(ctx)
	if err := tx.Create(model).Error; err != nil {
		return err
	}
	a.ID = model.ID
	return nil
}

func (r *AccountGormRepository) Update(ctx context.Context, a *domain.Account) error {
	model := dbschema.NewSchemaAccount(a)
	tx := r.db.GetTx(ctx).WithContext(ctx)
	return tx.Save(model).Error
}

func (r *AccountGormRepository) FindFirst(ctx context.Context, filter domain.AccountFilter) (*domain.Account, error) {
	var model dbschema.Account
	sql := r.applyFilter(r.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *AccountGormRepository) FindByFilter(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	var models []*dbschema.Account
	sql := r.applyFilter(r.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.Find(&models).Error; err != nil {
		return nil, err
	}
	return functional.Map(models, func(model *dbschema.Account) *domain.Account {
		return model.EtoD()
	}), nil
}

// applyFilter applies conditions dynamically to the query.
func (r *AccountGormRepository) applyFilter(sql *gorm.DB, filter domain.AccountFilter) *gorm.DB {
	if filter.Email != nil {
		sql = sql.Where("email = ?", *filter.Email)
	}
	if filter.PublicID != nil {
		sql = sql.Where("public_id = ?", *filter.PublicID)
	}
	if filter.Enabled != nil {
		sql = sql.Where("enabled = ?", *filter.Enabled)
	}
	return sql
}
