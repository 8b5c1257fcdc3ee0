package engine

import "time"

// Stage describes a high-level phase of checking one batch.
type Stage string

const (
	// StageDecode is the batch decoding stage.
	StageDecode Stage = "decode"
	// StageCheck is the rule-running stage.
	StageCheck Stage = "check"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the batch is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the batch is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the batch finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the batch failed.
	StatusError Status = "error"
)

// Event reports progress for one batch file.
type Event struct {
	Batch   string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
