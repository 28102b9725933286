package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lifeguard/internal/activity"
	"lifeguard/internal/worker"
	mockactivitystream "lifeguard/pkg/activitystream/mock"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"
	mockstorage "lifeguard/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, action string) *river.Job[activity.JobArgs] {
	return &river.Job[activity.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: activity.JobArgs{
			ActivityID: uuid.New(),
			UserID:     uuid.New(),
			Action:     action,
			Details:    map[string]any{"safe": false},
			OccurredAt: time.Now().UTC(),
		},
	}
}

func TestActivityWorker_Work_StoresAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockActivityStorage(ctrl)
	stream := mockactivitystream.NewMockPublisher(ctrl)
	w := worker.NewActivityWorker(store, stream)

	job := makeJob(1, domain.ActionURLScanned)
	want := job.Args.Activity()

	gomock.InOrder(
		store.EXPECT().StoreActivity(gomock.Any(), want).Return(true, nil),
		stream.EXPECT().Publish(gomock.Any(), want).Return(nil),
	)

	require.NoError(t, w.Work(context.Background(), job))
}

func TestActivityWorker_Work_WithoutStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockActivityStorage(ctrl)
	w := worker.NewActivityWorker(store, nil)

	store.EXPECT().StoreActivity(gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2, domain.ActionPasswordChecked)))
}

func TestActivityWorker_Work_StoreErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockActivityStorage(ctrl)
	stream := mockactivitystream.NewMockPublisher(ctrl)
	w := worker.NewActivityWorker(store, stream)

	dbErr := errors.New("connection reset")
	store.EXPECT().StoreActivity(gomock.Any(), gomock.Any()).Return(false, dbErr)

	err := w.Work(context.Background(), makeJob(3, domain.ActionPasswordGenerated))
	require.ErrorIs(t, err, dbErr)
}

func TestActivityWorker_Work_RetriedJobPublishesAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockActivityStorage(ctrl)
	stream := mockactivitystream.NewMockPublisher(ctrl)
	w := worker.NewActivityWorker(store, stream)

	job := makeJob(4, domain.ActionCheckDeleted)
	brokerErr := errors.New("not enough replicas")

	// first attempt stores but fails to publish
	store.EXPECT().StoreActivity(gomock.Any(), gomock.Any()).Return(true, nil)
	stream.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(brokerErr)
	require.ErrorIs(t, w.Work(context.Background(), job), brokerErr)

	// retry finds the row already stored and publishes
	store.EXPECT().StoreActivity(gomock.Any(), gomock.Any()).Return(false, nil)
	stream.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, w.Work(context.Background(), job))
}
