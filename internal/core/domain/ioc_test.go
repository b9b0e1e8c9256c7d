package domain

import "testing"

func TestSetCollapsesDuplicates(t *testing.T) {
	s := NewSet()
	s.Add(IOC{Type: Domain, Value: "example.com"})
	s.Add(IOC{Type: Domain, Value: "example.com"})
	s.Add(IOC{Type: IPAddress, Value: "192.0.2.1"})

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSetEqualityIsStructural(t *testing.T) {
	// Same value under different types must be distinct members.
	s := NewSet()
	s.Add(IOC{Type: Domain, Value: "10.0.0.1"})
	s.Add(IOC{Type: IPAddress, Value: "10.0.0.1"})

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (type participates in equality)", s.Len())
	}
	if !s.Contains(IOC{Type: IPAddress, Value: "10.0.0.1"}) {
		t.Errorf("Contains() lost a member")
	}
}

func TestSetEqual(t *testing.T) {
	a := NewSet()
	a.Add(IOC{Type: Hash, Value: "d41d8cd98f00b204e9800998ecf8427e"})
	a.Add(IOC{Type: URL, Value: "http://evil.example.com/x"})

	b := NewSet()
	b.Add(IOC{Type: URL, Value: "http://evil.example.com/x"})
	b.Add(IOC{Type: Hash, Value: "d41d8cd98f00b204e9800998ecf8427e"})

	if !a.Equal(b) {
		t.Errorf("insertion order must not affect equality")
	}

	b.Add(IOC{Type: Domain, Value: "evil.example.com"})
	if a.Equal(b) {
		t.Errorf("sets of different size reported equal")
	}

	c := NewSet()
	c.Add(IOC{Type: Hash, Value: "d41d8cd98f00b204e9800998ecf8427e"})
	c.Add(IOC{Type: URL, Value: "http://other.example.com/x"})
	if a.Equal(c) {
		t.Errorf("sets with different members reported equal")
	}
}

func TestSetValues(t *testing.T) {
	s := NewSet()
	if got := s.Values(); len(got) != 0 {
		t.Errorf("Values() on empty set = %v, want empty slice", got)
	}

	s.Add(IOC{Type: Domain, Value: "alpha.com"})
	s.Add(IOC{Type: Domain, Value: "beta.org"})
	if got := s.Values(); len(got) != 2 {
		t.Errorf("Values() returned %d members, want 2", len(got))
	}
}
