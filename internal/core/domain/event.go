package domain

// Event is a lifecycle notification emitted by the host package manager.
// The set of implementations is closed: OperationEvent and CommandEvent.
type Event interface {
	event()
}

// OperationEvent reports that a single package operation completed.
type OperationEvent struct {
	Operation Operation
}

// CommandEvent reports that the whole install or update command completed.
type CommandEvent struct {
	Name string
}

func (OperationEvent) event() {}
func (CommandEvent) event()   {}
