package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/pkg/metrics"
)

type statsSourceStub struct {
	stats *entities.DashboardStats
	err   error
	calls atomic.Int32
}

func (s *statsSourceStub) Stats(context.Context) (*entities.DashboardStats, error) {
	s.calls.Add(1)
	return s.stats, s.err
}

func gauge(t *testing.T, collection, scope string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, metrics.ContentRecords.WithLabelValues(collection, scope).Write(m))
	return m.GetGauge().GetValue()
}

func TestRefresh_PublishesCounts(t *testing.T) {
	src := &statsSourceStub{stats: &entities.DashboardStats{
		Executives:          entities.ExecutiveCounts{Total: 6, Visible: 5},
		Sponsors:            entities.SponsorCounts{Total: 3, Active: 1},
		InterestSubmissions: entities.RecentCounts{Total: 40, Recent: 7},
		SponsorInquiries:    entities.RecentCounts{Total: 2, Recent: 0},
	}}
	job := NewContentMetricsJob(src, time.Minute)

	job.refresh(context.Background())
	require.Equal(t, float64(5), gauge(t, "executives", "visible"))
	require.Equal(t, float64(1), gauge(t, "sponsors", "active"))
	require.Equal(t, float64(7), gauge(t, "interest_submissions", "recent"))
	require.Equal(t, float64(2), gauge(t, "sponsor_inquiries", "total"))
}

func TestRefresh_KeepsLastValuesOnError(t *testing.T) {
	metrics.SetContentRecords("executives", "total", 9)
	job := NewContentMetricsJob(&statsSourceStub{err: errors.New("db down")}, time.Minute)

	job.refresh(context.Background())
	require.Equal(t, float64(9), gauge(t, "executives", "total"))
}

func TestStart_StopsOnStop(t *testing.T) {
	src := &statsSourceStub{stats: &entities.DashboardStats{}}
	job := NewContentMetricsJob(src, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return src.calls.Load() >= 2 }, time.Second, time.Millisecond)
	job.Stop()
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	job := NewContentMetricsJob(&statsSourceStub{stats: &entities.DashboardStats{}}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}
