package services

import (
	"context"
	"log"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/intake"

	"github.com/google/uuid"
)

// LogSubmitter writes leads to the application log. Used in development
// and whenever no real intake endpoint is configured.
type LogSubmitter struct{}

func (LogSubmitter) SubmitLead(ctx context.Context, lead models.LeadSubmission) (intake.Ack, error) {
	if err := ctx.Err(); err != nil {
		return intake.Ack{}, err
	}
	ref := "log-" + uuid.NewString()[:8]
	log.Printf("[INFO] Lead received (ref: %s) name=%q email=%q company=%q budget=%s details=%d chars",
		ref, lead.Name, lead.Email, lead.CompanyURL, lead.Budget, len(lead.ProjectDetails))
	return intake.Ack{Reference: ref, ReceivedAt: time.Now()}, nil
}
