package model

// Status selects open or completed tasks in a listing.
type Status string

const (
	StatusOpen Status = "o"
	StatusDone Status = "d"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusDone:
		return true
	}
	return false
}

// Toggle flips between open and done.
func (s Status) Toggle() Status {
	switch s {
	case StatusOpen:
		return StatusDone
	case StatusDone:
		return StatusOpen
	}
	return StatusOpen
}

// Done reports whether the status selects completed tasks.
func (s Status) Done() bool {
	return s == StatusDone
}

// PriorityFilter narrows a listing to one priority.
type PriorityFilter string

const (
	PriorityFilterAll    PriorityFilter = "A"
	PriorityFilterHigh   PriorityFilter = "H"
	PriorityFilterMedium PriorityFilter = "M"
	PriorityFilterLow    PriorityFilter = "L"
)

func (f PriorityFilter) Valid() bool {
	switch f {
	case PriorityFilterAll, PriorityFilterHigh, PriorityFilterMedium, PriorityFilterLow:
		return true
	}
	return false
}

// Next cycles A -> H -> M -> L -> A.
func (f PriorityFilter) Next() PriorityFilter {
	switch f {
	case PriorityFilterAll:
		return PriorityFilterHigh
	case PriorityFilterHigh:
		return PriorityFilterMedium
	case PriorityFilterMedium:
		return PriorityFilterLow
	case PriorityFilterLow:
		return PriorityFilterAll
	}
	return PriorityFilterAll
}

// Priority returns the priority the filter selects; ok is false for All.
func (f PriorityFilter) Priority() (p Priority, ok bool) {
	switch f {
	case PriorityFilterHigh:
		return PriorityHigh, true
	case PriorityFilterMedium:
		return PriorityMedium, true
	case PriorityFilterLow:
		return PriorityLow, true
	case PriorityFilterAll:
	}
	return "", false
}

// DateFilter narrows a listing by due date.
type DateFilter string

const (
	DateFilterAll      DateFilter = "A"
	DateFilterToday    DateFilter = "T"
	DateFilterThisWeek DateFilter = "W"
	DateFilterOverdue  DateFilter = "O"
	DateFilterNoDate   DateFilter = "N"
)

func (f DateFilter) Valid() bool {
	switch f {
	case DateFilterAll, DateFilterToday, DateFilterThisWeek, DateFilterOverdue, DateFilterNoDate:
		return true
	}
	return false
}

// Next cycles A -> T -> W -> O -> N -> A.
func (f DateFilter) Next() DateFilter {
	switch f {
	case DateFilterAll:
		return DateFilterToday
	case DateFilterToday:
		return DateFilterThisWeek
	case DateFilterThisWeek:
		return DateFilterOverdue
	case DateFilterOverdue:
		return DateFilterNoDate
	case DateFilterNoDate:
		return DateFilterAll
	}
	return DateFilterAll
}
