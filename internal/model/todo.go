package model

import "time"

const TitleMaxLength = 200

type TodoItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	IsDone       bool      `json:"is_done"`
	CreatedAt    time.Time `json:"created_at"`
	AssignedToID *int64    `json:"assigned_to_id"`
}

type AssigneeFilterKind int

const (
	// AssigneeAny applies no assignment predicate.
	AssigneeAny AssigneeFilterKind = iota
	// AssigneeUnassigned selects items whose assigned_to_id is null.
	AssigneeUnassigned
	// AssigneePerson selects items assigned to PersonID.
	AssigneePerson
)

func (k AssigneeFilterKind) String() string {
	switch k {
	case AssigneeAny:
		return "any"
	case AssigneeUnassigned:
		return "unassigned"
	case AssigneePerson:
		return "person"
	default:
		return "unknown"
	}
}

// AssigneeFilter selects todo items by assignment. PersonID is only
// meaningful when Kind is AssigneePerson.
type AssigneeFilter struct {
	Kind     AssigneeFilterKind
	PersonID int64
}

func AnyAssignee() AssigneeFilter {
	return AssigneeFilter{Kind: AssigneeAny}
}

func Unassigned() AssigneeFilter {
	return AssigneeFilter{Kind: AssigneeUnassigned}
}

func AssignedTo(personID int64) AssigneeFilter {
	return AssigneeFilter{Kind: AssigneePerson, PersonID: personID}
}
