package subscription

import "time"

type JobStatus string

const (
	JobRunning  JobStatus = "running"
	JobFinished JobStatus = "finished"
	JobFailed   JobStatus = "failed"
)

// ReconcileResult is the outcome of one reconciliation pass. Sync and
// background runs produce the same shape.
type ReconcileResult struct {
	OK      bool            `json:"ok"`
	Checked int             `json:"checked"`
	Updated int             `json:"updated"`
	Failed  int             `json:"failed"`
	Results []ReconcileItem `json:"results"`
}

// ReconcileItem reports one subscription row; Error is set when that row failed.
type ReconcileItem struct {
	SubscriptionID uint   `json:"subscription_id"`
	UserID         uint   `json:"user_id"`
	ExternalID     string `json:"external_id"`
	Status         string `json:"status,omitempty"`
	IsPaid         bool   `json:"is_paid"`
	Changed        bool   `json:"changed"`
	Error          string `json:"error,omitempty"`
}

// ReconcileJob is an audit record of one background reconciliation.
type ReconcileJob struct {
	id          string
	status      JobStatus
	triggeredBy string
	result      *ReconcileResult
	errMessage  string
	startedAt   time.Time
	finishedAt  *time.Time
}

func NewReconcileJob(id, triggeredBy string) *ReconcileJob {
	return &ReconcileJob{
		id:          id,
		status:      JobRunning,
		triggeredBy: triggeredBy,
		startedAt:   time.Now().UTC(),
	}
}

type ReconcileJobState struct {
	ID          string
	Status      JobStatus
	TriggeredBy string
	Result      *ReconcileResult
	Error       string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

func ReconstructReconcileJob(s ReconcileJobState) *ReconcileJob {
	return &ReconcileJob{
		id:          s.ID,
		status:      s.Status,
		triggeredBy: s.TriggeredBy,
		result:      s.Result,
		errMessage:  s.Error,
		startedAt:   s.StartedAt,
		finishedAt:  s.FinishedAt,
	}
}

func (j *ReconcileJob) ID() string               { return j.id }
func (j *ReconcileJob) Status() JobStatus        { return j.status }
func (j *ReconcileJob) TriggeredBy() string      { return j.triggeredBy }
func (j *ReconcileJob) Result() *ReconcileResult { return j.result }
func (j *ReconcileJob) ErrorMessage() string     { return j.errMessage }
func (j *ReconcileJob) StartedAt() time.Time     { return j.startedAt }
func (j *ReconcileJob) FinishedAt() *time.Time   { return j.finishedAt }

func (j *ReconcileJob) Finish(result *ReconcileResult) {
	now := time.Now().UTC()
	j.status = JobFinished
	j.result = result
	j.finishedAt = &now
}

func (j *ReconcileJob) Fail(err error) {
	now := time.Now().UTC()
	j.status = JobFailed
	j.errMessage = err.Error()
	j.finishedAt = &now
}
