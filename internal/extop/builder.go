package extop

import (
	"bytes"
	"errors"
	"io"

	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// Build encodes args in declaration order into a new payload.
//
// The payload is a flat concatenation of independently encoded TLVs
// (requestValue ::= value1 value2 ...); no SEQUENCE is wrapped around the set.
// A nil argument fails with *ParameterError before anything is encoded, and
// a failure of the byte sink is returned as *EncodingError. On error the
// returned slice is nil.
func Build(args ...Arg) ([]byte, error) {
	var buf bytes.Buffer
	if err := BuildTo(&buf, args...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildTo encodes args in declaration order onto w.
//
// Every argument is resolved before the first write, so a *ParameterError
// leaves w untouched. A write failure is returned as *EncodingError wrapping
// the original fault; w may then hold the TLVs written before the fault.
func BuildTo(w io.Writer, args ...Arg) error {
	elems, err := resolve("build", args)
	if err != nil {
		recordBuild(OutcomeParameterError)
		return err
	}

	enc := ber.NewEncoder(w)
	for _, e := range elems {
		if err := enc.WriteElement(e.class, e.form, e.number, e.content); err != nil {
			recordBuild(OutcomeEncodingError)
			return &EncodingError{Err: err}
		}
	}

	recordBuild(OutcomeOK)
	return nil
}

// resolve validates every argument and turns it into an element.
func resolve(op string, args []Arg) ([]element, error) {
	elems := make([]element, len(args))
	for i, a := range args {
		if a == nil {
			return nil, &ParameterError{Op: op, Index: i, Reason: "argument is nil"}
		}
		e, err := a.element()
		if err != nil {
			var pe *ParameterError
			if errors.As(err, &pe) {
				return nil, &ParameterError{Op: op, Index: i, Reason: pe.Op + ": " + pe.Reason}
			}
			return nil, &ParameterError{Op: op, Index: i, Reason: err.Error()}
		}
		elems[i] = e
	}
	return elems, nil
}
