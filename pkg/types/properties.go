package types

// Properties is a string map that remembers first-insertion order.
// Setting an existing key replaces its value in place.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty Properties.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores value under key.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge copies every entry of other into p, in other's order.
func (p *Properties) Merge(other *Properties) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		p.Set(k, v)
	}
}
