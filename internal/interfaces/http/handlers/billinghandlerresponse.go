package handlers

import (
	"time"

	"togetherly/internal/domain/subscription"
)

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type CancelSubscriptionResponse struct {
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`
}

// ReconcileStartedResponse is returned when a pass runs in the background.
type ReconcileStartedResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type ReconcileJobResponse struct {
	ID          string                        `json:"id"`
	Status      string                        `json:"status"`
	TriggeredBy string                        `json:"triggered_by"`
	Result      *subscription.ReconcileResult `json:"result,omitempty"`
	Error       string                        `json:"error,omitempty"`
	StartedAt   time.Time                     `json:"started_at"`
	FinishedAt  *time.Time                    `json:"finished_at,omitempty"`
}

func toReconcileJobResponse(job *subscription.ReconcileJob) *ReconcileJobResponse {
	return &ReconcileJobResponse{
		ID:          job.ID(),
		Status:      string(job.Status()),
		TriggeredBy: job.TriggeredBy(),
		Result:      job.Result(),
		Error:       job.ErrorMessage(),
		StartedAt:   job.StartedAt(),
		FinishedAt:  job.FinishedAt(),
	}
}
