package urlrisk_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeguard/internal/urlrisk"
	"lifeguard/pkg/cache"
	mockcache "lifeguard/pkg/cache/mock"
	"lifeguard/pkg/urlscanner"
	mockurlscanner "lifeguard/pkg/urlscanner/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedReputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockcache.NewMockCache(ctrl)
	next := mockurlscanner.NewMockDomainReputation(ctrl)
	cached := urlrisk.WithReputationCache(next, store, 10*time.Minute)

	verdict := urlscanner.DomainVerdict{RiskScore: 88, Phishing: true}
	encoded := []byte(`{"riskScore":88,"malicious":false,"phishing":true,"suspicious":false}`)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), "reputation:evil.example").Return(nil, cache.ErrMiss),
		next.EXPECT().Reputation(gomock.Any(), "evil.example").Return(verdict, nil),
		store.EXPECT().Set(gomock.Any(), "reputation:evil.example", encoded, 10*time.Minute).Return(nil),
		store.EXPECT().Get(gomock.Any(), "reputation:evil.example").Return(encoded, nil),
	)

	for range 2 {
		v, err := cached.Reputation(context.Background(), "evil.example")
		require.NoError(t, err)
		require.Equal(t, verdict, v)
	}
}

func TestCachedReputation_errorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockcache.NewMockCache(ctrl)
	next := mockurlscanner.NewMockDomainReputation(ctrl)
	cached := urlrisk.WithReputationCache(next, store, time.Minute)

	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	next.EXPECT().Reputation(gomock.Any(), "evil.example").Return(urlscanner.DomainVerdict{}, errors.New("timeout"))

	_, err := cached.Reputation(context.Background(), "evil.example")
	require.Error(t, err)
}
