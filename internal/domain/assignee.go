package domain

import (
	"maps"
	"strconv"
	"strings"
)

// assigneeIDs maps the full name sent by the CRM to the staff identifier used downstream.
// Keys are matched exactly: case and inner whitespace matter.
var assigneeIDs = map[string]int{
	"Mahmoud Dana":     269,
	"Farouk Elewi":     291,
	"Jessica Espanola": 110,
	"Sajjad Rehman":    272,
	"Mansour -":        270,
	"Noor Barakat":     271,
	"Mohamed Al Nour":  806,
	"Adnan fayed":      806,
}

// ResolveAssignee looks up the staff identifier for a full name
func ResolveAssignee(fullName string) (int, bool) {
	id, ok := assigneeIDs[fullName]
	return id, ok
}

// KnownAssignees returns a copy of the name to identifier table
func KnownAssignees() map[string]int {
	return maps.Clone(assigneeIDs)
}

// AssigneeFullName joins first and last name the way the CRM displays them.
// The second return value is false when both parts are empty, meaning no assignee was sent.
func AssigneeFullName(firstName, lastName string) (string, bool) {
	if firstName == "" && lastName == "" {
		return "", false
	}
	return strings.TrimSpace(firstName + " " + lastName), true
}

// AssigneeLabel returns the value stored for an assignee:
//   - nil when no name was supplied
//   - the decimal staff identifier when the name is known
//   - the raw full name otherwise
func AssigneeLabel(firstName, lastName string) *string {
	fullName, ok := AssigneeFullName(firstName, lastName)
	if !ok {
		return nil
	}

	if id, found := ResolveAssignee(fullName); found {
		label := strconv.Itoa(id)
		return &label
	}

	return &fullName
}
