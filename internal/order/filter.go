package order

type Filter string

const (
	FilterNew       Filter = "new"
	FilterPreparing Filter = "preparing"
	FilterReady     Filter = "ready"
	FilterCompleted Filter = "completed"
	FilterAll       Filter = "all"
)

var Filters = []Filter{FilterNew, FilterPreparing, FilterReady, FilterCompleted, FilterAll}

// ParseFilter maps a tab name to a Filter. An empty name means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownFilter
}

// Match reports whether an order in status s belongs to the tab. PENDING
// orders are unpaid and never match.
func (f Filter) Match(s Status) bool {
	if s == StatusPending {
		return false
	}
	switch f {
	case FilterNew:
		return s == StatusConfirmed
	case FilterPreparing:
		return s == StatusPreparing
	case FilterReady:
		return s == StatusReadyForPickup
	case FilterCompleted:
		return s == StatusPickedUp || s == StatusInTransit || s == StatusDelivered
	case FilterAll:
		return true
	}
	return false
}
