package class

// Host is the catalog of registered class descriptors for one shell
// instance. It resolves both short display names and fully-qualified names
// to descriptors.
//
// The short-name map is lossy but stable: only the first descriptor
// registered under a given short name is reachable by that short name.
// The fq-name map is authoritative and always resolves every registered
// class.
type Host struct {
	byFQ    map[string]*Descriptor
	byShort map[string]*Descriptor
}

// NewHost returns an empty catalog.
func NewHost() *Host {
	return &Host{
		byFQ:    make(map[string]*Descriptor),
		byShort: make(map[string]*Descriptor),
	}
}

// Register validates the descriptor's attribute/method disjointness
// invariant and inserts it into the catalog. It fails with ErrKindDuplicateClass
// if FQName is already registered.
func (h *Host) Register(d *Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	if _, exists := h.byFQ[d.FQName]; exists {
		return &Error{Kind: ErrKindDuplicateClass, Msg: "duplicate class " + d.FQName, Class: d.FQName}
	}
	h.byFQ[d.FQName] = d
	if _, exists := h.byShort[d.Name]; !exists {
		h.byShort[d.Name] = d
	}
	return nil
}

// Lookup resolves name as either a short or fully-qualified class name. The
// fq-name map is tried first since it is always authoritative.
func (h *Host) Lookup(name string) (*Descriptor, error) {
	if d, ok := h.byFQ[name]; ok {
		return d, nil
	}
	if d, ok := h.byShort[name]; ok {
		return d, nil
	}
	return nil, &Error{Kind: ErrKindUnknownClass, Msg: "unknown class " + name, Class: name}
}
