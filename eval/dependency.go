package eval

import (
	"fmt"

	nlp "deporacle/nlp/types"
)

const (
	ERR_HEAD    = "head"
	ERR_LABEL   = "label"
	ERR_MISSING = "missing"
)

// AttachmentError is a gold arc the test arcs got wrong.
type AttachmentError struct {
	Gold nlp.BasicDepArc
	// Test is the zero arc when the modifier has no test arc
	Test  nlp.BasicDepArc
	class string
}

var _ Error = &AttachmentError{}

func (e *AttachmentError) Class() string {
	return e.class
}

func (e *AttachmentError) String() string {
	if e.class == ERR_MISSING {
		return fmt.Sprintf("%s: %v not attached", e.class, e.Gold)
	}
	return fmt.Sprintf("%s: %v instead of %v", e.class, e.Test, e.Gold)
}

func byModifier(arcs []nlp.BasicDepArc) map[int]nlp.BasicDepArc {
	retval := make(map[int]nlp.BasicDepArc, len(arcs))
	for _, arc := range arcs {
		retval[arc.Modifier] = arc
	}
	return retval
}

func accuracy(test, gold []nlp.BasicDepArc, labeled bool) float64 {
	if len(gold) == 0 {
		return 1.0
	}
	testArcs := byModifier(test)
	correct := 0
	for _, goldArc := range gold {
		testArc, exists := testArcs[goldArc.Modifier]
		if !exists || testArc.Head != goldArc.Head {
			continue
		}
		if !labeled || testArc.Relation == goldArc.Relation {
			correct++
		}
	}
	return float64(correct) / float64(len(gold))
}

// LabeledAccuracy is the fraction of gold arcs found in test with the same
// head and relation.
func LabeledAccuracy(test, gold []nlp.BasicDepArc) float64 {
	return accuracy(test, gold, true)
}

// UnlabeledAccuracy is the fraction of gold arcs found in test with the same
// head.
func UnlabeledAccuracy(test, gold []nlp.BasicDepArc) float64 {
	return accuracy(test, gold, false)
}

// DepEval scores test arcs against gold arcs, labeled and unlabeled. Test
// arcs that disagree with the gold arc of their modifier are false
// positives, gold arcs without an agreeing test arc false negatives.
func DepEval(test, gold []nlp.BasicDepArc) *Result {
	retval := &Result{}
	labeled, unlabeled := &retval.Labeled, &retval.Unlabeled
	goldArcs := byModifier(gold)
	testArcs := byModifier(test)
	for _, testArc := range test {
		goldArc, exists := goldArcs[testArc.Modifier]
		switch {
		case exists && goldArc.Head == testArc.Head && goldArc.Relation == testArc.Relation:
			labeled.TP++
			unlabeled.TP++
		case exists && goldArc.Head == testArc.Head:
			labeled.FP++
			unlabeled.TP++
		default:
			labeled.FP++
			unlabeled.FP++
		}
	}
	for _, goldArc := range gold {
		testArc, exists := testArcs[goldArc.Modifier]
		switch {
		case !exists:
			labeled.FN++
			unlabeled.FN++
			retval.Errors = append(retval.Errors, &AttachmentError{Gold: goldArc, class: ERR_MISSING})
		case testArc.Head != goldArc.Head:
			labeled.FN++
			unlabeled.FN++
			retval.Errors = append(retval.Errors, &AttachmentError{Gold: goldArc, Test: testArc, class: ERR_HEAD})
		case testArc.Relation != goldArc.Relation:
			labeled.FN++
			retval.Errors = append(retval.Errors, &AttachmentError{Gold: goldArc, Test: testArc, class: ERR_LABEL})
		}
	}
	return retval
}
