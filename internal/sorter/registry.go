package sorter

// fileRegistry holds the ids declared in the PBXFileReference section.
type fileRegistry map[string]struct{}

func (r fileRegistry) register(id string) {
	r[id] = struct{}{}
}

func (r fileRegistry) contains(id string) bool {
	_, ok := r[id]
	return ok
}
