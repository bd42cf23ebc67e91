package extop

import (
	"errors"

	"github.com/KilimcininKorOglu/obaext/internal/logging"
)

// Dispatcher routes received extended responses to the factory registered
// for their OID, falling back to GenericResponse.
type Dispatcher struct {
	registry *Registry
	logger   logging.Logger
	recorder Recorder
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for dispatch events.
func WithLogger(l logging.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRecorder sets the Recorder notified of every dispatch outcome.
func WithRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

// NewDispatcher creates a Dispatcher over reg. A nil reg selects DefaultRegistry.
func NewDispatcher(reg *Registry, opts ...DispatcherOption) *Dispatcher {
	if reg == nil {
		reg = DefaultRegistry
	}
	d := &Dispatcher{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher reads from.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch materializes env using the factory registered for env.OID.
//
// An unknown or empty OID yields a *GenericResponse carrying the raw OID,
// value and result unchanged. So does a non-success result without a
// responseValue: the server rejected the operation and there is nothing to
// decode. A factory failure is returned as *DecodingError. Dispatch never blocks on other dispatches; it only holds
// the registry's read lock for the lookup.
func (d *Dispatcher) Dispatch(env *Envelope) (Response, error) {
	if env == nil {
		return nil, &ParameterError{Op: "dispatch", Index: -1, Reason: "envelope is nil"}
	}
	return d.dispatch(env.OID, env)
}

// DispatchReply materializes the reply to req. Servers may omit the
// responseName (RFC 4511 section 4.12), so when env carries no OID the
// request OID is used for the lookup and passed to the factory. A generic
// fallback still reports the OID the server actually sent.
func (d *Dispatcher) DispatchReply(req ExtendedOperation, env *Envelope) (Response, error) {
	if env == nil {
		return nil, &ParameterError{Op: "dispatch", Index: -1, Reason: "envelope is nil"}
	}
	key := env.OID
	if key == "" && req != nil {
		key = req.OID()
	}
	return d.dispatch(key, env)
}

func (d *Dispatcher) dispatch(key string, env *Envelope) (Response, error) {
	var factory Factory
	found := false
	if key != "" {
		factory, found = d.registry.Lookup(key)
	}

	if !found {
		d.logger.Debug("no factory registered, using generic response",
			"oid", key,
			"value_len", len(env.Value),
		)
		d.record(UnregisteredOID, OutcomeGeneric)
		return &GenericResponse{Result: env.Result, OID: env.OID, Value: env.Value}, nil
	}

	if !env.Result.ResultCode.IsSuccess() && len(env.Value) == 0 {
		d.logger.Debug("extended operation failed on server",
			"oid", key,
			"result_code", int(env.Result.ResultCode),
			"diagnostic", env.Result.DiagnosticMessage,
		)
		d.record(key, OutcomeResultError)
		return &GenericResponse{Result: env.Result, OID: env.OID, Value: env.Value}, nil
	}

	resp, err := factory(key, env.Value)
	if err != nil {
		var de *DecodingError
		if !errors.As(err, &de) {
			err = &DecodingError{OID: key, Err: err}
		}
		d.logger.Debug("response factory failed", "oid", key, "error", err.Error())
		d.record(key, OutcomeDecodeError)
		return nil, err
	}
	if resp == nil {
		d.record(key, OutcomeDecodeError)
		return nil, &DecodingError{OID: key, Err: errors.New("factory returned no response")}
	}

	if rs, ok := resp.(ResultSetter); ok {
		rs.SetResult(env.Result)
	}

	d.logger.Debug("extended response dispatched", "oid", key)
	d.record(key, OutcomeTyped)
	return resp, nil
}

func (d *Dispatcher) record(oid, outcome string) {
	if d.recorder != nil {
		d.recorder.Dispatched(oid, outcome)
	}
}
