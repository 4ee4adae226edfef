package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/RijanKanxo/travel-App/store"
)

// BackgroundManager is a struct for travel platform background jobs
type BackgroundManager struct {
	store store.TravelCore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(kv store.KeyValueStore, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewTravelStore(kv),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("travel-worker", 5)
	return m.worker.Launch()
}
