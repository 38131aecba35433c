package cron

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/cache"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

type CronService struct {
	userStore user.CacheStore
	cache     *cache.RedisCacheService
}

func NewCronService(userStore user.CacheStore, cacheService *cache.RedisCacheService) *CronService {
	return &CronService{
		userStore: userStore,
		cache:     cacheService,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) {

	ctab.AddJob("* * * * *", func() {
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})

	// Hourly cache census, guarded so only one replica runs it.
	ctab.AddJob("0 * * * *", func() {
		err := cache.WithLock(*cs.cache, cache.UserCensusLockKey, func() error {
			count, err := cs.userStore.Count(ctx)
			if err != nil {
				return err
			}
			logger.GetLogger().Infof("user cache census: %d records", count)
			return nil
		}, time.Minute)
		if err != nil {
			logger.GetLogger().Warnf("user cache census skipped: %v", err)
		}
	})
}
