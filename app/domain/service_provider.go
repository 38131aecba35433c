package domain

import (
	"github.com/google/wire"
	"lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/domain/auth"
	"lendsqr.dev/admin-api-gateway/app/domain/cron"
	"lendsqr.dev/admin-api-gateway/app/domain/user"
)

var ServiceProvider = wire.NewSet(
	auth.NewAuthService,
	admin.NewService,
	user.NewService,
	cron.NewCronService,
)
