package main

import (
	"fmt"
	"strings"
)

// StatusLine collects the fields shown in the window title.
type StatusLine struct {
	fields []string
}

// Add appends one formatted field.
func (s *StatusLine) Add(format string, args ...any) {
	s.fields = append(s.fields, fmt.Sprintf(format, args...))
}

// Clear drops every field, keeping the backing array.
func (s *StatusLine) Clear() {
	s.fields = s.fields[:0]
}

func (s *StatusLine) String() string {
	return strings.Join(s.fields, " | ")
}
