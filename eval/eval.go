package eval

// ratio is zero when there is nothing to count
func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

// Counts is the confusion table of one attachment criterion. A test arc is
// positive when it agrees with the gold arc of its modifier.
type Counts struct {
	TP, FP, FN int
}

func (c Counts) Add(other Counts) Counts {
	return Counts{TP: c.TP + other.TP, FP: c.FP + other.FP, FN: c.FN + other.FN}
}

func (c Counts) Incorrect() int {
	return c.FP + c.FN
}

// Precision is the attachment score over the test arcs
func (c Counts) Precision() float64 {
	return ratio(c.TP, c.TP+c.FP)
}

func (c Counts) Recall() float64 {
	return ratio(c.TP, c.TP+c.FN)
}

func (c Counts) F1() float64 {
	return F1(c.Precision(), c.Recall())
}

// Result scores the arcs of one sentence. Labeled needs head and relation
// to match, Unlabeled only the head.
type Result struct {
	Labeled, Unlabeled Counts
	Errors             Errors
}

func (r *Result) LAS() float64 {
	return r.Labeled.Precision()
}

func (r *Result) UAS() float64 {
	return r.Unlabeled.Precision()
}

// Total accumulates sentence results over a corpus. Results is only
// collected when it is non-nil.
type Total struct {
	Labeled, Unlabeled Counts
	Results            []*Result
	// sentences with every arc right, with and without labels
	LabeledExact, UnlabeledExact int
	Sentences                    int
	errors                       int
}

func (t *Total) Add(r *Result) {
	t.Labeled = t.Labeled.Add(r.Labeled)
	t.Unlabeled = t.Unlabeled.Add(r.Unlabeled)
	if r.Labeled.Incorrect() == 0 {
		t.LabeledExact++
	}
	if r.Unlabeled.Incorrect() == 0 {
		t.UnlabeledExact++
	}
	t.Sentences++
	t.errors += len(r.Errors)
	if t.Results != nil {
		t.Results = append(t.Results, r)
	}
}

func (t *Total) LAS() float64 {
	return t.Labeled.Precision()
}

func (t *Total) UAS() float64 {
	return t.Unlabeled.Precision()
}

// LEM and UEM are the labeled and unlabeled exact match rates
func (t *Total) LEM() float64 {
	return ratio(t.LabeledExact, t.Sentences)
}

func (t *Total) UEM() float64 {
	return ratio(t.UnlabeledExact, t.Sentences)
}

func (t *Total) Errors() Errors {
	retval := make(Errors, 0, t.errors)
	for _, v := range t.Results {
		retval = append(retval, v.Errors...)
	}
	return retval
}
