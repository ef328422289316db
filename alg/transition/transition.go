package transition

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

type Transition interface {
	Type() byte
	Equal(other Transition) bool
	String() string
}

type Configuration interface {
	Terminal() bool

	Copy() Configuration
	Len() int
	Previous() Configuration
	GetSequence() ConfigurationSequence
	GetLastTransition() Transition
	String() string
}

// ConfigurationSequence is ordered from the newest configuration back to the
// initial one, as returned by Configuration.GetSequence.
type ConfigurationSequence []Configuration

type TransitionSystem interface {
	// Transition applies t to a copy of from; from is never modified.
	Transition(from Configuration, t Transition) (Configuration, error)
	// GetTransitions returns the transitions whose preconditions hold.
	GetTransitions(conf Configuration) []Transition
	Legal(conf Configuration, t Transition) bool
	Terminal(conf Configuration) bool

	TransitionTypes() []string
	Projective() bool
	Name() string
}

// IllegalTransitionError is returned when a transition is applied to a
// configuration where its precondition does not hold.
type IllegalTransitionError struct {
	Transition    Transition
	Configuration Configuration
	Reason        string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %v on %v: %s", e.Transition, e.Configuration, e.Reason)
}

func Contains(transitions []Transition, t Transition) bool {
	if t == nil {
		return false
	}
	for _, cur := range transitions {
		if cur.Equal(t) {
			return true
		}
	}
	return false
}

func Names(transitions []Transition) []string {
	names := make([]string, len(transitions))
	for i, t := range transitions {
		names[i] = t.String()
	}
	return names
}

func (seq ConfigurationSequence) String() string {
	var buf bytes.Buffer
	w := new(tabwriter.Writer)
	w.Init(&buf, 0, 8, 0, '\t', 0)
	seqLength := len(seq)
	for i := range seq {
		conf := seq[seqLength-i-1]
		w.Write([]byte(conf.String()))
		if i < seqLength-1 {
			w.Write([]byte{'\n'})
		}
	}
	w.Flush()
	return buf.String()
}

// Transitions returns the transitions that built the sequence, oldest first.
func (seq ConfigurationSequence) Transitions() []Transition {
	retval := make([]Transition, 0, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		if last := seq[i].GetLastTransition(); last != nil {
			retval = append(retval, last)
		}
	}
	return retval
}

func (seq ConfigurationSequence) SharedTransitions(other ConfigurationSequence) int {
	lenOther := len(other)
	lenSeq := len(seq)
	sharedSeq := 0
	for i := range seq {
		if len(other) <= i {
			break
		}
		mine, theirs := seq[lenSeq-i-1].GetLastTransition(), other[lenOther-i-1].GetLastTransition()
		if (mine == nil) != (theirs == nil) || (mine != nil && !mine.Equal(theirs)) {
			break
		}
		sharedSeq++
	}
	return sharedSeq
}

func FormatTransitions(transitions []Transition) string {
	return strings.Join(Names(transitions), " ")
}
