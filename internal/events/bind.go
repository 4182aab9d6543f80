package events

import "time"

// DecodeStart is emitted before converting an input literal to a native value.
type DecodeStart struct {
	Type string
}

// DecodeFinish is emitted after a decode attempt, successful or not.
type DecodeFinish struct {
	Type     string
	Err      error
	Duration time.Duration
}

// ResolveStart is emitted before producing an output value.
type ResolveStart struct {
	Type  string
	Async bool
}

// ResolveFinish is emitted after an output value was produced or failed.
type ResolveFinish struct {
	Type     string
	Async    bool
	Err      error
	Duration time.Duration
}
