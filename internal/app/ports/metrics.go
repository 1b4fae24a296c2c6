package ports

type ActionMetrics interface {
	RecordSuccess()
	RecordRejection()
	RecordConflict()
	RecordFailure()
}
