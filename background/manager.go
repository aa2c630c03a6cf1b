package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aidlink-inc/aidlink-api/external/onesignal"
	"github.com/aidlink-inc/aidlink-api/external/sms"
	"github.com/aidlink-inc/aidlink-api/store"
)

// BackgroundManager is a struct for aidlink background manager
type BackgroundManager struct {
	store store.AidCore

	mongoStore store.MongoStore

	notification NotificationCenter

	smsSender sms.Sender

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewAidStore(ormDB, mongoStore),
		mongoStore: mongoStore,
		notification: NewOnesignalNotificationCenter(
			viper.GetString("onesignal.appID"), o,
		),
		smsSender:  sms.New(),
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
	m.worker = m.taskServer.NewWorker("aidlink-worker", 5)
	return m.worker.Launch()
}
