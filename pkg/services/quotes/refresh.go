package quotes

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RateRefreshJob re-fetches the USD/EUR rate so the cache stays warm
// between requests. It satisfies the scheduler's Job contract.
type RateRefreshJob struct {
	svc *Service
	log zerolog.Logger
}

func NewRateRefreshJob(svc *Service, log zerolog.Logger) *RateRefreshJob {
	return &RateRefreshJob{
		svc: svc,
		log: log.With().Str("job", "fx_refresh").Logger(),
	}
}

func (j *RateRefreshJob) Name() string { return "fx_refresh" }

func (j *RateRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rate, err := j.svc.RefreshRate(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("rate refresh failed")
		return err
	}

	j.log.Info().Float64("rate", rate.Rate).Msg("USD/EUR rate refreshed")
	return nil
}
