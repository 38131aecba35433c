package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/dbschema"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/transaction"
)

// UserGormRepository is the durable user cache backed by Postgres. Writes
// upsert on the upstream id so re-fetching the directory never duplicates
// rows.
type UserGormRepository struct {
	db *transaction.Database
}

var _ domain.CacheStore = (*UserGormRepository)(nil)

func NewUserGormRepository(db *transaction.Database) domain.CacheStore {
	return &UserGormRepository{
		db: db,
	}
}

var upsertOnExternalID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "external_id"}},
	UpdateAll: true,
}

func (r *UserGormRepository) Put(ctx context.Context, u *domain.User) error {
	model, err := dbschema.NewSchemaUser(u)
	if err != nil {
		return domain.NewStorageError("put", err)
	}
	tx := r.db.GetTx(ctx).WithContext(ctx)
	if err := tx.Clauses(upsertOnExternalID).Create(model).Error; err != nil {
		return domain.NewStorageError("put", err)
	}
	return nil
}

func (r *UserGormRepository) PutAll(ctx context.Context, users []*domain.User) error {
	models := make([]*dbschema.User, 0, len(users))
	for _, u := range users {
		model, err := dbschema.NewSchemaUser(u)
		if err != nil {
			return domain.NewStorageError("put_all", err)
		}
		models = append(models, model)
	}
	if len(models) == 0 {
		return nil
	}
	// One transaction for the whole batch: either every record lands or none.
	err := r.db.GetTx(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(upsertOnExternalID).CreateInBatches(models, 200).Error
	})
	if err != nil {
		return domain.NewStorageError("put_all", err)
	}
	return nil
}

func (r *UserGormRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var model dbschema.User
	tx := r.db.GetTx(ctx).WithContext(ctx)
	if err := tx.Where("external_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get", err)
	}
	u, err := model.EtoD()
	if err != nil {
		return nil, domain.NewStorageError("get", err)
	}
	return u, nil
}

func (r *UserGormRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	var models []*dbschema.User
	tx := r.db.GetTx(ctx).WithContext(ctx)
	if err := tx.Order("id asc").Find(&models).Error; err != nil {
		return nil, domain.NewStorageError("get_all", err)
	}
	result := make([]*domain.User, 0, len(models))
	for _, model := range models {
		u, err := model.EtoD()
		if err != nil {
			return nil, domain.NewStorageError("get_all", err)
		}
		result = append(result, u)
	}
	return result, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.GetTx(ctx).WithContext(ctx)
	if err := tx.Model(&dbschema.User{}).Count(&count).Error; err != nil {
		return 0, domain.NewStorageError("count", err)
	}
	return count, nil
}
