package checker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mockactivity "lifeguard/internal/activity/mock"
	"lifeguard/internal/checker"
	mockchecker "lifeguard/internal/checker/mock"
	"lifeguard/pkg/breach"
	mockbreach "lifeguard/pkg/breach/mock"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/password"
	"lifeguard/pkg/serrors"
	"lifeguard/pkg/storage"
	mockstorage "lifeguard/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const strongPassword = "Correct-Horse9"

type mocks struct {
	storage  *mockstorage.MockStorage
	breach   *mockbreach.MockChecker
	urls     *mockchecker.MockURLAssessor
	notifier *mockactivity.MockNotifier
}

func newTestChecker(t *testing.T) (checker.Checker, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		storage:  mockstorage.NewMockStorage(ctrl),
		breach:   mockbreach.NewMockChecker(ctrl),
		urls:     mockchecker.NewMockURLAssessor(ctrl),
		notifier: mockactivity.NewMockNotifier(ctrl),
	}

	return checker.New(checker.Deps{
		Storage:  m.storage,
		Breach:   m.breach,
		URLs:     m.urls,
		Notifier: m.notifier,
	}), m
}

// storeReturnsInput makes StoreCheck echo the check back with an ID set.
func storeReturnsInput(m mocks, id domain.CheckID) *gomock.Call {
	return m.storage.EXPECT().StoreCheck(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Check) (*domain.Check, error) {
			c.ID = id
			c.CreatedAt = time.Now()

			return &c, nil
		})
}

func TestAssessPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mockbreach.NewMockChecker(ctrl)

	t.Run("without breach checker", func(t *testing.T) {
		got := checker.AssessPassword(context.Background(), nil, strongPassword)
		require.Equal(t, domain.StrengthStrong, got.Strength)
		require.Equal(t, 14, got.Length)
		require.False(t, got.IsBreached)
		require.Empty(t, got.BreachDetails)
	})

	t.Run("breach feedback precedes the summary", func(t *testing.T) {
		b.EXPECT().Check(gomock.Any(), "password").Return(domain.BreachResult{
			IsBreached: true, BreachCount: 9545824, Details: "Password found in 9545824 data breaches",
		})

		got := checker.AssessPassword(context.Background(), b, "password")
		require.True(t, got.IsBreached)
		require.Equal(t, 9545824, got.BreachCount)
		require.Equal(t, 0, got.Score)
		require.Equal(t, password.FeedbackSummaryWeak, got.Feedback[len(got.Feedback)-1])
		require.Equal(t, "Password found in 9545824 data breaches", got.Feedback[len(got.Feedback)-2])
	})

	t.Run("unavailable lookup keeps heuristic feedback", func(t *testing.T) {
		b.EXPECT().Check(gomock.Any(), strongPassword).Return(breach.Unavailable())

		got := checker.AssessPassword(context.Background(), b, strongPassword)
		require.False(t, got.IsBreached)
		require.Equal(t, breach.DetailsUnavailable, got.BreachDetails)
		require.Equal(t, []string{password.FeedbackSummaryStrong}, got.Feedback)
	})
}

func TestChecker_CheckPassword(t *testing.T) {
	c, m := newTestChecker(t)
	userID := domain.UserID(uuid.New())
	id := domain.CheckID(uuid.New())

	m.breach.EXPECT().Check(gomock.Any(), strongPassword).Return(domain.BreachResult{Details: breach.DetailsClean})
	storeReturnsInput(m, id)
	m.notifier.EXPECT().Notify(gomock.Any(), userID, domain.ActionPasswordChecked, map[string]any{
		"checkId":  id.String(),
		"strength": "strong",
		"breached": false,
	})

	got, err := c.CheckPassword(context.Background(), userID, strongPassword)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, domain.CheckKindPassword, got.Kind)
	require.Empty(t, got.Target, "password must not be stored")
	require.True(t, got.Safe)
	require.Equal(t, domain.RiskLevelLow, got.RiskLevel)
	require.NotNil(t, got.Result.Password)
	require.Nil(t, got.Result.URL)
}

func TestChecker_CheckPassword_BreachedIsHighRisk(t *testing.T) {
	c, m := newTestChecker(t)

	m.breach.EXPECT().Check(gomock.Any(), strongPassword).Return(domain.BreachResult{
		IsBreached: true, BreachCount: 3, Details: "Password found in 3 data breaches",
	})
	storeReturnsInput(m, domain.CheckID{})
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.ActionPasswordChecked, gomock.Any())

	got, err := c.CheckPassword(context.Background(), domain.UserID{}, strongPassword)
	require.NoError(t, err)
	require.False(t, got.Safe)
	require.Equal(t, domain.RiskLevelHigh, got.RiskLevel)
}

func TestChecker_CheckPassword_Empty(t *testing.T) {
	c, _ := newTestChecker(t)

	_, err := c.CheckPassword(context.Background(), domain.UserID{}, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestChecker_CheckPassword_StoreError(t *testing.T) {
	c, m := newTestChecker(t)

	m.breach.EXPECT().Check(gomock.Any(), gomock.Any()).Return(breach.Unavailable())
	m.storage.EXPECT().StoreCheck(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := c.CheckPassword(context.Background(), domain.UserID{}, strongPassword)
	require.Error(t, err)
}

func TestChecker_CheckURL(t *testing.T) {
	c, m := newTestChecker(t)
	userID := domain.UserID(uuid.New())

	assessment := domain.NewURLAssessment("example.com/login")
	assessment.MarkUnsafe(domain.RiskLevelMedium, "no https")

	m.urls.EXPECT().Assess(gomock.Any(), "example.com/login").Return(assessment)
	storeReturnsInput(m, domain.CheckID{})
	m.notifier.EXPECT().Notify(gomock.Any(), userID, domain.ActionURLScanned, gomock.Any())

	got, err := c.CheckURL(context.Background(), userID, "  example.com/login ")
	require.NoError(t, err)
	require.Equal(t, domain.CheckKindURL, got.Kind)
	require.Equal(t, "http://example.com/login", got.Target)
	require.False(t, got.Safe)
	require.Equal(t, domain.RiskLevelMedium, got.RiskLevel)
	require.Equal(t, []string{"no https"}, got.Result.URL.ThreatTypes)
}

func TestChecker_CheckURL_Empty(t *testing.T) {
	c, _ := newTestChecker(t)

	_, err := c.CheckURL(context.Background(), domain.UserID{}, "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestChecker_GeneratePassword(t *testing.T) {
	c, m := newTestChecker(t)

	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.ActionPasswordGenerated,
		map[string]any{"length": 20})

	pw, err := c.GeneratePassword(context.Background(), domain.UserID{}, 20)
	require.NoError(t, err)
	require.Len(t, pw, 20)

	_, err = c.GeneratePassword(context.Background(), domain.UserID{}, password.MaxGenerateLength+1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestChecker_History(t *testing.T) {
	c, m := newTestChecker(t)
	userID := domain.UserID(uuid.New())
	cursor := storage.Cursor{At: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), ID: uuid.New()}
	next := storage.Cursor{At: time.Date(2024, 4, 30, 8, 0, 0, 500, time.UTC), ID: uuid.New()}

	m.storage.EXPECT().UserChecks(gomock.Any(), userID, domain.CheckKindURL, cursor, uint(10)).
		Return(storage.UserChecks{Checks: []domain.Check{{Kind: domain.CheckKindURL}}, NextCursor: &next}, nil)

	checks, nextCursor, err := c.History(context.Background(), userID, domain.CheckKindURL,
		cursor.String(), 10)
	require.NoError(t, err)
	require.Len(t, checks, 1)

	parsed, err := storage.ParseCursor(nextCursor)
	require.NoError(t, err)
	require.True(t, parsed.At.Equal(next.At))
	require.Equal(t, next.ID, parsed.ID)
}

func TestChecker_History_BadInput(t *testing.T) {
	c, _ := newTestChecker(t)

	_, _, err := c.History(context.Background(), domain.UserID{}, "", "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	// a bare timestamp cannot break ties between rows created together
	_, _, err = c.History(context.Background(), domain.UserID{}, "", "2024-05-01T10:00:00Z", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = c.History(context.Background(), domain.UserID{}, "EMAIL", "", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestChecker_Result(t *testing.T) {
	c, m := newTestChecker(t)
	id := domain.CheckID(uuid.New())

	m.storage.EXPECT().CheckByID(gomock.Any(), gomock.Any(), id).Return(&domain.Check{ID: id}, nil)
	got, err := c.Result(context.Background(), domain.UserID{}, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)

	m.storage.EXPECT().CheckByID(gomock.Any(), gomock.Any(), id).Return(nil, nil)
	_, err = c.Result(context.Background(), domain.UserID{}, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestChecker_Delete(t *testing.T) {
	c, m := newTestChecker(t)
	id := domain.CheckID(uuid.New())

	m.storage.EXPECT().DeleteCheck(gomock.Any(), gomock.Any(), id).
		Return(&domain.Check{ID: id, Kind: domain.CheckKindPassword}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.ActionCheckDeleted,
		map[string]any{"checkId": id.String(), "kind": "PASSWORD"})
	require.NoError(t, c.Delete(context.Background(), domain.UserID{}, id))

	m.storage.EXPECT().DeleteCheck(gomock.Any(), gomock.Any(), id).Return(nil, nil)
	require.ErrorIs(t, c.Delete(context.Background(), domain.UserID{}, id), serrors.ErrNotFound)
}

func TestChecker_Activities(t *testing.T) {
	c, m := newTestChecker(t)
	userID := domain.UserID(uuid.New())

	m.storage.EXPECT().UserActivities(gomock.Any(), userID, storage.Cursor{}, uint(5)).
		Return(storage.UserActivities{Activities: []domain.Activity{{Action: domain.ActionURLScanned}}}, nil)

	acts, next, err := c.Activities(context.Background(), userID, "", 5)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	require.Empty(t, next)
}
