package gcc

// ValueSpec is the cardinality bound for one value: at least OMin and at
// most OMax of the variables in X must take Value.
type ValueSpec struct {
	Value int
	OMin  int
	OMax  int
}

// NewValueSpec builds a value specification, requiring 0 <= omin <= omax.
func NewValueSpec(value, omin, omax int) ValueSpec {
	if omin < 0 || omin > omax {
		panic("gcc: value spec requires 0 <= omin <= omax")
	}
	return ValueSpec{Value: value, OMin: omin, OMax: omax}
}
