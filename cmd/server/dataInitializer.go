package main

import (
	"context"

	"lendsqr.dev/admin-api-gateway/app/domain/auth"
	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
)

type DataInitializer struct {
	authService *auth.AuthService
	userService *user.UserService
}

func (d *DataInitializer) Install(ctx context.Context) error {
	if err := d.installAdminAccounts(ctx); err != nil {
		return err
	}
	d.warmUserCache(ctx)
	return nil
}

func (d *DataInitializer) installAdminAccounts(ctx context.Context) error {
	return d.authService.InitAdmins(ctx)
}

// warmUserCache primes the durable cache from the upstream directory so the
// first dashboard request after a restart does not pay the fetch. Failures
// are tolerated; the listing path has its own cache fallback.
func (d *DataInitializer) warmUserCache(ctx context.Context) {
	if _, err := d.userService.LoadUsers(ctx); err != nil {
		logger.GetLogger().Warnf("user cache warmup skipped: %v", err)
	}
}
