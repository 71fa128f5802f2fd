package services

import (
	"Shelved/internal/config"
	"Shelved/internal/repository"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor purges soft-deleted boxes and items on a cron schedule. It only
// touches rows the user already deleted; live entities are never mutated.
type Janitor struct {
	boxRepo       repository.BoxRepository
	itemRepo      repository.ItemRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		boxRepo:       boxRepo,
		itemRepo:      itemRepo,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.purge(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting purge job")
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.purge(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"error": err.Error(),
		}).Error("Failed to start purge job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "purge",
		"status": "stopped",
	}).Info("Janitor purge stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) purge(forced bool) {
	boxes, err := j.boxRepo.PurgeDeleted()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"error": err.Error(),
		}).Error("Failed to purge deleted boxes")
	}
	items, err := j.itemRepo.PurgeDeleted()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"error": err.Error(),
		}).Error("Failed to purge deleted items")
	}
	if boxes > 0 || items > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "purge",
			"forced": forced,
			"boxes":  boxes,
			"items":  items,
		}).Info("Purged soft-deleted rows")
	}
}
