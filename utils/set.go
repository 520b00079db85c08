package utils

// NameSet is an insertion-ordered set of strings.
type NameSet struct {
	seen  map[string]struct{}
	names []string
}

// NewNameSet creates an empty NameSet.
func NewNameSet() *NameSet {
	return &NameSet{seen: make(map[string]struct{})}
}

// Add returns true if the name was newly added, false if already present.
func (s *NameSet) Add(name string) bool {
	if _, exists := s.seen[name]; exists {
		return false
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Values returns the names in insertion order.
func (s *NameSet) Values() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
