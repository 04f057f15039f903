package jobs

import (
	"context"
	"testing"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopSubmitter() intake.Submitter {
	return intake.SubmitterFunc(func(ctx context.Context, lead models.LeadSubmission) (intake.Ack, error) {
		return intake.Ack{Reference: "ok"}, nil
	})
}

func TestSweepForms(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	registry := intake.NewRegistry(noopSubmitter(), intake.Options{Now: func() time.Time { return now }}, 30*time.Minute)
	defer registry.Shutdown()

	closed := registry.Open(intake.SurfaceModal)
	require.NoError(t, closed.Close())
	registry.Open(intake.SurfaceInline)

	assert.Equal(t, 1, SweepForms(registry, now))
	assert.Equal(t, 1, registry.Len())

	assert.Equal(t, 1, SweepForms(registry, now.Add(time.Hour)))
	assert.Equal(t, 0, registry.Len())

	assert.Equal(t, 0, SweepForms(registry, now.Add(2*time.Hour)))
}

func TestStartScheduler(t *testing.T) {
	registry := intake.NewRegistry(noopSubmitter(), intake.Options{}, time.Hour)
	defer registry.Shutdown()

	c := StartScheduler(registry)
	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Next.After(time.Now()))

	<-c.Stop().Done()
}
