package room

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartJanitor schedules a periodic sweep evicting vacated rooms that have
// seen no activity for longer than ttl. A dead socket surfaces as a read
// error and vacates its seat through Leave, which evicts the room once the
// last seat goes; the sweep is a backstop for vacated rooms left behind.
func (m *Manager) StartJanitor(schedule string, ttl time.Duration) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { m.sweep(ttl) }); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func (m *Manager) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.store.Rooms() {
		r.mu.Lock()
		// An occupied seat means a connection the transport still considers
		// live; its room is never swept out from under it.
		idle := len(r.Seats) == 0 && r.UpdatedAt.Before(cutoff)
		r.mu.Unlock()
		if idle {
			m.store.DeleteRoom(r.ID)
			m.logger.Info("idle room swept",
				zap.String("room", r.ID),
				zap.Duration("ttl", ttl),
			)
		}
	}
}
