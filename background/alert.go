package background

import (
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"
)

const TaskAlertExpiry = "alert-expiry"

// ExpireAlerts is a background job sweeping expired alert records out of
// storage. The API keeps filtering lazily on every read, so this job is
// only about reclaiming space, never about correctness.
func (m *BackgroundManager) ExpireAlerts() error {
	deleted, err := m.store.DeleteExpiredAlerts()
	if err != nil {
		return err
	}

	if deleted > 0 {
		log.WithField("prefix", "background").Infof("evicted %d expired alerts", deleted)
	}
	return nil
}

// EnqueueAlertExpiry submits one alert-expiry task to the queue.
func (m *BackgroundManager) EnqueueAlertExpiry() error {
	_, err := m.taskServer.SendTask(&tasks.Signature{
		Name: TaskAlertExpiry,
	})
	return err
}
