package healing

// Milestone is a named overall-progress threshold.
type Milestone struct {
	Key       string  `json:"key"`
	Threshold float64 `json:"threshold"`
	Name      string  `json:"name"`
	Message   string  `json:"message"`
}

var milestones = []Milestone{
	{"first_steps", 0.1, "First Steps", "You've started rewiring. Every session counts."},
	{"building_momentum", 0.25, "Building Momentum", "Your practice is becoming a habit your brain can lean on."},
	{"breaking_through", 0.4, "Breaking Through", "Old alarm patterns are quieting down."},
	{"transforming", 0.6, "Transforming", "New pathways are carrying more of the load."},
	{"flourishing", 0.75, "Flourishing", "Regulation is coming more naturally now."},
	{"thriving", 0.9, "Thriving", "You've built deep, lasting resilience."},
}

// Milestones returns the fixed milestones in ascending threshold order.
func Milestones() []Milestone {
	return append([]Milestone(nil), milestones...)
}

func LookupMilestone(key string) (Milestone, bool) {
	for _, m := range milestones {
		if m.Key == key {
			return m, true
		}
	}
	return Milestone{}, false
}
