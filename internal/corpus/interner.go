package corpus

// Interner is a bidirectional, append-only mapping between attribute
// strings and compact identifiers. It is read-only once the corpus has
// finished loading.
type Interner struct {
	strings []string
	ids     map[string]Identifier
}

// NewInterner returns an empty interner ready to accept strings.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]Identifier)}
}

// Intern returns the identifier for s, assigning a new one in insertion
// order if s has not been seen before. Idempotent.
func (in *Interner) Intern(s string) Identifier {
	if id, ok := in.ids[s]; ok {
		return id
	}
	id := Identifier(len(in.strings))
	in.strings = append(in.strings, s)
	in.ids[s] = id
	return id
}

// Lookup returns the identifier for s without interning it.
func (in *Interner) Lookup(s string) (Identifier, bool) {
	id, ok := in.ids[s]
	return id, ok
}

// Resolve returns the string an identifier was interned from.
func (in *Interner) Resolve(id Identifier) string {
	return in.strings[id]
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int {
	return len(in.strings)
}
