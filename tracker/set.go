// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"encoding/json"
	"sort"
)

// A Set is a unordered collection of unique string elements.
type Set struct {
	set map[string]bool
}

// Add an element to the Set.
func (s *Set) Add(element string) {
	if element != "" {
		if s.set == nil {
			s.set = make(map[string]bool)
		}
		s.set[element] = true
	}
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.set)
}

// Elements returns the elements in ascending order.
func (s *Set) Elements() []string {
	elements := make([]string, 0, len(s.set))
	for element := range s.set {
		elements = append(elements, element)
	}
	sort.Strings(elements)
	return elements
}

// MarshalJSON returns the JSON encoding of the Set.
// The Set is converted to a sorted JSON Array.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Elements())
}
