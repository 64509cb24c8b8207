package validation

import (
	"sort"
	"strings"
)

// Error carries one message per invalid field. Handlers return Fields as the
// details of a 400 response.
type Error struct {
	Fields map[string]string
}

// Error lists the field messages sorted by field name, e.g. "amount: ...; date: ...".
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = name + ": " + e.Fields[name]
	}
	return strings.Join(msgs, "; ")
}
