package component

// Clock is the singleton simulation clock. DT is the duration of the tick
// currently being simulated, in seconds.
type Clock struct {
	DT      float64
	Elapsed float64
	Tick    uint64
}

var ClockComponent = NewComponent[Clock]()
