package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signalJob struct {
	ran chan struct{}
}

func (j *signalJob) Run(ctx context.Context) error {
	select {
	case j.ran <- struct{}{}:
	default:
	}
	return nil
}

func TestStartRunsJobImmediately(t *testing.T) {
	job := &signalJob{ran: make(chan struct{}, 1)}
	s := New(job, time.Hour, time.Minute)
	require.NoError(t, s.Start())
	defer s.Stop()

	select {
	case <-job.ran:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "job did not run on start")
	}
}
