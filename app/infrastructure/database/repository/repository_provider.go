package repository

import (
	"github.com/google/wire"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/accountrepo"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/transaction"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	accountrepo.NewAccountGormRepository,
	transaction.NewDatabase,
)
