package domain

// IOCType classifies an indicator of compromise.
type IOCType string

const (
	IPAddress IOCType = "ip"
	Domain    IOCType = "domain"
	Hash      IOCType = "hash"
	URL       IOCType = "url"
)

// IOC is an immutable indicator value. Two IOCs are equal when both the
// type tag and the value match, so the struct is usable as a map key.
type IOC struct {
	Type  IOCType // ip, domain, hash or url
	Value string  // refanged indicator text
}

// Set is an unordered collection of unique IOCs, scoped to a single
// extraction call. Duplicate occurrences in the input collapse to one entry.
type Set map[IOC]struct{}

func NewSet() Set {
	return make(Set)
}

func (s Set) Add(ioc IOC) {
	s[ioc] = struct{}{}
}

func (s Set) Contains(ioc IOC) bool {
	_, ok := s[ioc]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Values returns the members in map iteration order. No ordering guarantee
// is made between calls; callers needing stable output must sort.
func (s Set) Values() []IOC {
	values := make([]IOC, 0, len(s))
	for ioc := range s {
		values = append(values, ioc)
	}
	return values
}

// Equal reports whether both sets hold exactly the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for ioc := range s {
		if !other.Contains(ioc) {
			return false
		}
	}
	return true
}
