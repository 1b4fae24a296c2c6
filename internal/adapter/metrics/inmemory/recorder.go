package inmemory

import "sync"

type Snapshot struct {
	ActionTotal     uint64 `json:"action_total"`
	ActionSuccess   uint64 `json:"action_success"`
	ActionRejection uint64 `json:"action_rejection"`
	ActionConflict  uint64 `json:"action_conflict"`
	ActionFailure   uint64 `json:"action_failure"`
}

type Recorder struct {
	mu        sync.Mutex
	success   uint64
	rejection uint64
	conflict  uint64
	failure   uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
}

func (r *Recorder) RecordRejection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejection++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ActionTotal:     r.success + r.rejection + r.conflict + r.failure,
		ActionSuccess:   r.success,
		ActionRejection: r.rejection,
		ActionConflict:  r.conflict,
		ActionFailure:   r.failure,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
