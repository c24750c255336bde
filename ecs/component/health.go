package component

type Health struct {
	Current int
	Max     int
}

func (h *Health) Dead() bool {
	return h != nil && h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
