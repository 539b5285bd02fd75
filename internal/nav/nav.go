// Package nav maps a role to the ordered set of dashboard destinations it
// is offered. This is presentation only; data access is authorized by the
// backend on every request.
package nav

import "coursedeck/internal/entity"

// Entry is a role-visible destination. The ID doubles as a routing key and
// must stay stable.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Badge int    `json:"badge,omitempty"`
}

var table = map[entity.Role][]Entry{
	entity.RoleStudent: {
		{ID: "overview", Label: "Overview", Icon: "home"},
		{ID: "courses", Label: "My Courses", Icon: "book-open"},
		{ID: "assignments", Label: "Assignments", Icon: "clipboard-list"},
		{ID: "grades", Label: "Grades", Icon: "award"},
		{ID: "payments", Label: "Payments", Icon: "credit-card"},
		{ID: "notifications", Label: "Notifications", Icon: "bell"},
	},
	entity.RoleInstructor: {
		{ID: "overview", Label: "Overview", Icon: "home"},
		{ID: "courses", Label: "Teaching", Icon: "book-open"},
		{ID: "grading", Label: "Grading", Icon: "check-square"},
		{ID: "earnings", Label: "Earnings", Icon: "dollar-sign"},
		{ID: "notifications", Label: "Notifications", Icon: "bell"},
	},
	entity.RoleAdmin: {
		{ID: "overview", Label: "Overview", Icon: "home"},
		{ID: "users", Label: "Users", Icon: "users"},
		{ID: "courses", Label: "Courses", Icon: "book-open"},
		{ID: "payments", Label: "Payments", Icon: "credit-card"},
		{ID: "notifications", Label: "Notifications", Icon: "bell"},
	},
}

// EntriesFor returns a copy of the navigation entries offered to a role.
// Unknown roles get the student set.
func EntriesFor(role entity.Role) []Entry {
	entries, ok := table[role]
	if !ok {
		entries = table[entity.RoleStudent]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// SetBadge stamps a badge count onto the entry with the given ID, in place.
// Unknown IDs are ignored.
func SetBadge(entries []Entry, id string, count int) {
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Badge = count
			return
		}
	}
}
