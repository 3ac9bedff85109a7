package services

import (
	"Stocked/internal/config"
	"Stocked/internal/realtime"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ExpirySweeper periodically finds inventory items whose expiration date has
// passed, logs them, and nudges subscribed clients to reload.
type ExpirySweeper struct {
	itemService   ItemService
	broadcaster   Broadcaster
	configuration *config.Configuration
	logService    LogService
	sweeping      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewExpirySweeper(
	itemService ItemService,
	broadcaster Broadcaster,
	logService LogService,
	configuration *config.Configuration,
) *ExpirySweeper {
	return &ExpirySweeper{
		itemService:   itemService,
		broadcaster:   broadcaster,
		logService:    logService,
		configuration: configuration,
		sweeping:      false,
		mutex:         sync.Mutex{},
		cron:          cron.New(),
	}
}

// ForceSweep runs one sweep immediately, off-schedule.
func (e *ExpirySweeper) ForceSweep() error {
	e.mutex.Lock()
	if e.sweeping {
		e.mutex.Unlock()
		return errors.New("sweep is in progress")
	}
	e.sweeping = true
	e.mutex.Unlock()

	go func() {
		defer func() {
			e.mutex.Lock()
			e.sweeping = false
			e.mutex.Unlock()
		}()
		e.sweep()
	}()

	return nil
}

// StartSweepCycle schedules sweeps on the configured cron expression.
func (e *ExpirySweeper) StartSweepCycle() {
	e.logService.Log.Debug("starting expiry sweep job")

	cronSchedule := e.configuration.Server.SweepConfig.Schedule
	if cronSchedule == "" {
		e.logService.Log.Debug("no sweep schedule configured, expiry sweep disabled")
		return
	}
	_, err := e.cron.AddFunc(cronSchedule, func() {
		e.mutex.Lock()
		if e.sweeping {
			e.mutex.Unlock()
			return
		}
		e.sweeping = true
		e.mutex.Unlock()

		defer func() {
			e.mutex.Lock()
			e.sweeping = false
			e.mutex.Unlock()
		}()
		e.sweep()
	})

	if err != nil {
		e.logService.Log.WithFields(logrus.Fields{
			"job":   "expiry-sweep",
			"error": err.Error(),
		}).Error("Failed to start expiry sweep job")
		return
	}
	e.cron.Start()
}

func (e *ExpirySweeper) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.cron.Stop()
	e.logService.Log.WithFields(logrus.Fields{
		"job":    "expiry-sweep",
		"status": "stopped",
	}).Info("expiry sweep stopped")
}

func (e *ExpirySweeper) IsSweeping() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.sweeping
}

func (e *ExpirySweeper) sweep() {
	items, err := e.itemService.FindExpiredBefore(time.Now())
	if err != nil {
		e.logService.Log.WithFields(logrus.Fields{
			"job":    "expiry-sweep",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find expired items")
		return
	}
	if len(items) == 0 {
		return
	}

	households := make(map[uint]int)
	for i := range items {
		e.logService.Log.WithFields(logrus.Fields{
			"job":       "expiry-sweep",
			"item":      items[i].Name,
			"household": items[i].HouseholdID,
			"expired":   items[i].ExpirationDate,
		}).Info("item past expiration")
		households[items[i].HouseholdID]++
	}

	// One reload nudge per affected household
	for householdID, count := range households {
		e.broadcaster.Broadcast(realtime.NewEvent("items", "update", householdID, 0))
		e.logService.Log.WithFields(logrus.Fields{
			"job":       "expiry-sweep",
			"status":    "success",
			"household": householdID,
			"count":     count,
		}).Info("expiry sweep finished for household")
	}
}
