package jobexpireworker

import (
	"context"
	"time"

	"jobboard-backend/db"
	jobstore "jobboard-backend/lib/job/store"
	baseworker "jobboard-backend/lib/utils/base-worker"
	"jobboard-backend/lib/utils/helpers"
)

const batchSize = 100

// StartWorker снимает с публикации вакансии, у которых истек срок expires_at
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("JobExpireWorker", 15*time.Second, 10*time.Minute),
		jobStore: jobstore.NewInstance(db.DB),
		now:      time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	jobStore jobstore.Provider
	now      func() time.Time
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	expireTime := i.now()
	for !helpers.IsContextDone(ctx) {
		list, err := i.jobStore.ListToExpire(expireTime, batchSize)
		if err != nil {
			logger.WithError(err).Error("Ошибка получения списка вакансий с истекшим сроком публикации")
			return
		}
		expired := 0
		for _, job := range list {
			if helpers.IsContextDone(ctx) {
				return
			}
			err = i.jobStore.Update(job.ID, map[string]interface{}{"is_active": false})
			if err != nil {
				logger.
					WithError(err).
					WithField("job_id", job.ID).
					Error("Ошибка снятия вакансии с публикации")
				continue
			}
			expired++
			logger.WithField("job_id", job.ID).Info("вакансия снята с публикации по сроку")
		}
		// ошибки обновления не должны зациклить обработку
		if len(list) < batchSize || expired == 0 {
			return
		}
	}
}
