package infrastructure

import (
	"github.com/google/wire"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/cache"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/directory"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewRedisCacheService,
	directory.NewDirectoryGateway,
)
