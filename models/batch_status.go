package models

type BatchRunStatus string

const (
	BatchRunStatusPending         BatchRunStatus = "pending"
	BatchRunStatusPendingApproval BatchRunStatus = "pending_approval"
	BatchRunStatusApproved        BatchRunStatus = "approved"
	BatchRunStatusRejected        BatchRunStatus = "rejected"
	BatchRunStatusRunning         BatchRunStatus = "running"
	BatchRunStatusCompleted       BatchRunStatus = "completed"
	BatchRunStatusFailed          BatchRunStatus = "failed"
)

// допустимые переходы статусов, отклоненный запуск не переходит ни в какой статус
var batchRunTransitions = map[BatchRunStatus][]BatchRunStatus{
	BatchRunStatusPending:         {BatchRunStatusRunning},
	BatchRunStatusPendingApproval: {BatchRunStatusApproved, BatchRunStatusRejected},
	BatchRunStatusApproved:        {BatchRunStatusRunning},
	BatchRunStatusRunning:         {BatchRunStatusCompleted, BatchRunStatusFailed},
}

func (s BatchRunStatus) CanTransit(to BatchRunStatus) bool {
	for _, allowed := range batchRunTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s BatchRunStatus) IsTerminal() bool {
	return len(batchRunTransitions[s]) == 0
}
