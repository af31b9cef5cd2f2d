package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/metrics"
)

const refreshTimeout = 10 * time.Second

type statsSource interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
}

// ContentMetricsJob periodically publishes the dashboard counts as gauges.
type ContentMetricsJob struct {
	source   statsSource
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewContentMetricsJob(source statsSource, interval time.Duration) *ContentMetricsJob {
	return &ContentMetricsJob{
		source:   source,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start refreshes once immediately, then every interval until ctx is done
// or Stop is called.
func (j *ContentMetricsJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting content metrics job", zap.Duration("interval", j.interval))

	j.refresh(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "Content metrics job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Content metrics job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *ContentMetricsJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *ContentMetricsJob) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	stats, err := j.source.Stats(ctx)
	if err != nil {
		logger.Warn(ctx, "Failed to refresh content metrics", zap.Error(err))
		return
	}

	metrics.SetContentRecords("executives", "total", stats.Executives.Total)
	metrics.SetContentRecords("executives", "visible", stats.Executives.Visible)
	metrics.SetContentRecords("sponsors", "total", stats.Sponsors.Total)
	metrics.SetContentRecords("sponsors", "active", stats.Sponsors.Active)
	metrics.SetContentRecords("interest_submissions", "total", stats.InterestSubmissions.Total)
	metrics.SetContentRecords("interest_submissions", "recent", stats.InterestSubmissions.Recent)
	metrics.SetContentRecords("sponsor_inquiries", "total", stats.SponsorInquiries.Total)
	metrics.SetContentRecords("sponsor_inquiries", "recent", stats.SponsorInquiries.Recent)
}
