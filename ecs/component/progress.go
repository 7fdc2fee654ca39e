package component

// Progress is the filled fraction of a bar, in [0,1].
type Progress struct {
	Value float64
}

var ProgressComponent = NewComponent[Progress]()
