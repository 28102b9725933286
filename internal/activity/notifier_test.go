package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeguard/internal/activity"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"
	mockstorage "lifeguard/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestJobNotifier_Notify_AddsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	n := activity.NewJobNotifier(jobs, activity.Options{Queue: "activity", MaxAttempts: 3})

	userID := domain.UserID(uuid.New())
	jobs.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(ctx context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(activity.JobArgs)
			require.True(t, ok)
			require.Equal(t, "ActivityLogJob", job.Kind())
			require.Equal(t, uuid.UUID(userID), job.UserID)
			require.Equal(t, domain.ActionURLScanned, job.Action)
			require.Equal(t, "https://example.com", job.Details["url"])
			require.NotEqual(t, uuid.Nil, job.ActivityID)

			opts := job.InsertOpts()
			require.Equal(t, "activity", opts.Queue)
			require.Equal(t, 3, opts.MaxAttempts)
			require.True(t, opts.UniqueOpts.ByArgs)

			return true, nil
		})

	n.Notify(context.Background(), userID, domain.ActionURLScanned, map[string]any{"url": "https://example.com"})
	n.Wait()
}

func TestJobNotifier_Notify_SurvivesCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	n := activity.NewJobNotifier(jobs, activity.Options{})

	ctx, cancel := context.WithCancel(context.Background())

	jobs.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(ctx context.Context, _ river.JobArgs, _ *river.InsertOpts) (bool, error) {
			require.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)

			return true, nil
		})

	n.Notify(ctx, domain.UserID{}, domain.ActionPasswordChecked, nil)
	cancel()
	n.Wait()
}

func TestJobNotifier_Notify_ErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	n := activity.NewJobNotifier(jobs, activity.Options{DispatchTimeout: time.Second})

	jobs.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))

	require.NotPanics(t, func() {
		n.Notify(context.Background(), domain.UserID{}, domain.ActionPasswordGenerated, nil)
		n.Wait()
	})
}

func TestJobNotifier_NewJobArgs_ClientDetails(t *testing.T) {
	n := activity.NewJobNotifier(nil, activity.Options{})

	details := map[string]any{"strength": "weak"}
	ctx := activity.WithClient(context.Background(), chromeUA, "203.0.113.7")
	args := n.NewJobArgs(ctx, domain.UserID{}, domain.ActionPasswordChecked, details)

	client, ok := args.Details["client"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Chrome", client["browser"])
	require.Equal(t, "203.0.113.7", client["ip"])
	require.Equal(t, "weak", args.Details["strength"])
	require.NotContains(t, details, "client", "caller's map must not be modified")

	plain := n.NewJobArgs(context.Background(), domain.UserID{}, domain.ActionPasswordChecked, nil)
	require.Nil(t, plain.Details)
}

func TestJobArgs_Activity(t *testing.T) {
	id, userID := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	got := activity.JobArgs{
		ActivityID: id,
		UserID:     userID,
		Action:     domain.ActionCheckDeleted,
		Details:    map[string]any{"checkId": "x"},
		OccurredAt: at,
	}.Activity()

	require.Equal(t, domain.Activity{
		ID:         domain.ActivityID(id),
		UserID:     domain.UserID(userID),
		Action:     domain.ActionCheckDeleted,
		Details:    map[string]any{"checkId": "x"},
		OccurredAt: at,
	}, got)
}

func TestClientDetails(t *testing.T) {
	require.Nil(t, activity.ClientDetails(context.Background()))
	require.Nil(t, activity.ClientDetails(activity.WithClient(context.Background(), "", "")))

	bot := activity.ClientDetails(activity.WithClient(context.Background(),
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", ""))
	require.Equal(t, true, bot["bot"])
	require.NotContains(t, bot, "ip")

	ipOnly := activity.ClientDetails(activity.WithClient(context.Background(), "", "10.0.0.1"))
	require.Equal(t, map[string]any{"ip": "10.0.0.1"}, ipOnly)
}

func TestNop(t *testing.T) {
	var n activity.Notifier = activity.Nop{}
	require.NotPanics(t, func() {
		n.Notify(context.Background(), domain.UserID{}, domain.ActionURLScanned, nil)
	})
}
