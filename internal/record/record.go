package record

// Record is an ordered attribute-name → value mapping for one source
// row. Keys keep the order in which they were first seen so rendered
// columns stay stable; a repeated key merges into the existing value
// rather than replacing it.
type Record struct {
	keys   []string
	values map[string]string
}

func New() *Record {
	return &Record{values: make(map[string]string)}
}

func (r *Record) Len() int { return len(r.keys) }

// Get returns the value for an exact key and whether it is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the attribute names in first-seen order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Append records key → value, concatenating onto any existing value
// with sep. Values are never dropped in favor of a later one.
func (r *Record) Append(key, value, sep string) {
	if key == "" {
		return
	}
	if prev, ok := r.values[key]; ok {
		r.values[key] = prev + sep + value
		return
	}
	r.keys = append(r.keys, key)
	r.values[key] = value
}

// Delete removes a key and its value; unknown keys are a no-op.
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Accumulator collects attribute names across a whole run in
// first-seen order. It is the only run-wide state the pipeline keeps
// and is passed explicitly to the renderer.
type Accumulator struct {
	names []string
	seen  map[string]bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[string]bool)}
}

func (a *Accumulator) Add(name string) {
	if name == "" || a.seen[name] {
		return
	}
	a.seen[name] = true
	a.names = append(a.names, name)
}

// AddRecord adds every key of rec in the record's own order.
func (a *Accumulator) AddRecord(rec *Record) {
	for _, k := range rec.Keys() {
		a.Add(k)
	}
}

// Names returns the accumulated attribute names in first-seen order.
func (a *Accumulator) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}
