package order

// transitions is the full lifecycle graph. Terminal statuses have no entry.
var transitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReadyForPickup},
	StatusReadyForPickup: {StatusPickedUp},
	StatusPickedUp:       {StatusInTransit},
	StatusInTransit:      {StatusDelivered},
}

// operatorTransitions is the subset of edges a partner operator may request.
// PICKED_UP onwards belongs to the courier.
var operatorTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReadyForPickup},
}

func contains(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether from→to is an edge of the lifecycle graph.
func CanTransition(from, to Status) bool {
	return contains(transitions[from], to)
}

// CanOperatorTransition reports whether an operator may request from→to.
func CanOperatorTransition(from, to Status) bool {
	return contains(operatorTransitions[from], to)
}

// NextOperatorStatuses returns the statuses an operator can move an order to.
func NextOperatorStatuses(from Status) []Status {
	return append([]Status(nil), operatorTransitions[from]...)
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool { return s.rank() >= 0 }

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// rank orders statuses along the happy path. CANCELLED ranks above every
// non-terminal status so it always wins a reconciliation.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusPreparing:
		return 2
	case StatusReadyForPickup:
		return 3
	case StatusPickedUp:
		return 4
	case StatusInTransit:
		return 5
	case StatusDelivered, StatusCancelled:
		return 6
	}
	return -1
}

// Reachable reports whether to can be reached from from by following one or
// more lifecycle edges.
func Reachable(from, to Status) bool {
	seen := map[Status]bool{from: true}
	queue := []Status{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range transitions[cur] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// Descriptor is what the UI needs to render a status badge.
type Descriptor struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

// Describe maps every status to its badge. A status missing from the switch
// is a programming error.
func Describe(s Status) Descriptor {
	switch s {
	case StatusPending:
		return Descriptor{s, "Pending", "yellow", "Clock"}
	case StatusConfirmed:
		return Descriptor{s, "Confirmed", "blue", "CheckCircle"}
	case StatusPreparing:
		return Descriptor{s, "Preparing", "orange", "ChefHat"}
	case StatusReadyForPickup:
		return Descriptor{s, "Ready for pickup", "green", "Package"}
	case StatusPickedUp:
		return Descriptor{s, "Picked up", "purple", "Bike"}
	case StatusInTransit:
		return Descriptor{s, "In transit", "indigo", "Bike"}
	case StatusDelivered:
		return Descriptor{s, "Delivered", "gray", "CheckCircle"}
	case StatusCancelled:
		return Descriptor{s, "Cancelled", "red", "XCircle"}
	}
	panic("order: no descriptor for status " + string(s))
}

// Descriptors returns the badge of every status in Statuses order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(Statuses))
	for _, s := range Statuses {
		out = append(out, Describe(s))
	}
	return out
}
