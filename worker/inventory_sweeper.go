package worker

import (
	"context"

	"github.com/go-redsync/redsync/v4"
	inventoryapp "github.com/muhammadheryan/digital-store/application/inventory"
	"github.com/muhammadheryan/digital-store/cmd/config"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepLockKey = "lock:inventory-sweep"

// Mutex is the part of *redsync.Mutex the sweeper needs.
type Mutex interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
}

// InventorySweeper runs InventoryApp.CheckAll on a cron schedule. Instances
// sharing a Redis take turns through a redsync lock; a busy lock skips the run.
type InventorySweeper struct {
	inventoryApp inventoryapp.InventoryApp
	schedule     string
	newMutex     func() Mutex
	cron         *cron.Cron
}

// NewInventorySweeper builds a sweeper. rs may be nil for a single instance deployment.
func NewInventorySweeper(cfg *config.Config, inventoryApp inventoryapp.InventoryApp, rs *redsync.Redsync) *InventorySweeper {
	s := &InventorySweeper{
		inventoryApp: inventoryApp,
		schedule:     cfg.Inventory.SweepSchedule,
		cron:         cron.New(cron.WithSeconds()),
	}
	if rs != nil {
		ttl := cfg.Inventory.LockTTL
		s.newMutex = func() Mutex {
			return rs.NewMutex(sweepLockKey, redsync.WithExpiry(ttl), redsync.WithTries(1))
		}
	}
	return s
}

// WithMutex replaces the lock factory.
func (s *InventorySweeper) WithMutex(newMutex func() Mutex) *InventorySweeper {
	s.newMutex = newMutex
	return s
}

// Start schedules the sweep. Runs stop being scheduled once ctx is done.
func (s *InventorySweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info("[InventorySweeper] started", zap.String("schedule", s.schedule))
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		logger.Info("[InventorySweeper] stopped")
	}()
	return nil
}

// RunOnce performs a single sweep and reports whether it ran.
func (s *InventorySweeper) RunOnce(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if s.newMutex != nil {
		m := s.newMutex()
		if err := m.LockContext(ctx); err != nil {
			logger.Info("[InventorySweeper] lock busy, skipping run", zap.String("error", err.Error()))
			return false
		}
		defer func() {
			if _, err := m.UnlockContext(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("[InventorySweeper] unlock", zap.String("error", err.Error()))
			}
		}()
	}

	res, err := s.inventoryApp.CheckAll(ctx)
	if err != nil {
		logger.Error("[InventorySweeper] err inventoryApp.CheckAll", zap.String("error", err.Error()))
		return true
	}
	logger.Info("[InventorySweeper] sweep done", zap.Int("checked", res.Checked), zap.Int("raised", res.Raised))
	return true
}
