package extop

import (
	"sync/atomic"
)

// Outcome labels reported to a Recorder.
const (
	OutcomeOK             = "ok"
	OutcomeParameterError = "parameter_error"
	OutcomeEncodingError  = "encoding_error"
	OutcomeTyped          = "typed"
	OutcomeGeneric        = "generic"
	OutcomeDecodeError    = "decode_error"
	OutcomeResultError    = "result_error"
)

// UnregisteredOID is reported to a Recorder in place of the OID of a
// response that had no factory, so server-chosen OIDs never become labels.
const UnregisteredOID = "unregistered"

// Recorder receives build and dispatch outcomes, typically to feed metrics.
type Recorder interface {
	// BuildCompleted is called once per Build or BuildTo call.
	BuildCompleted(outcome string)
	// Dispatched is called once per dispatched envelope with the registered
	// lookup OID, or UnregisteredOID for a generic fallback.
	Dispatched(oid, outcome string)
}

type recorderHolder struct {
	r Recorder
}

var buildRecorder atomic.Pointer[recorderHolder]

// SetRecorder installs the Recorder used by Build and BuildTo. Passing nil
// removes it.
func SetRecorder(r Recorder) {
	if r == nil {
		buildRecorder.Store(nil)
		return
	}
	buildRecorder.Store(&recorderHolder{r: r})
}

func recordBuild(outcome string) {
	if h := buildRecorder.Load(); h != nil {
		h.r.BuildCompleted(outcome)
	}
}
