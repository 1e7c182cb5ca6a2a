package ui

import "hash/fnv"

// ID identifies a widget across frames. Callers build them from stable names:
//
//	root := ui.NewID("editor")
//	tab := root.Child(i)
type ID uint64

const NoID ID = 0

// NewID hashes name into a root id.
func NewID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return nonZero(ID(h.Sum64()))
}

// Child derives the id of the i-th element under id.
func (id ID) Child(i int) ID {
	v := uint64(id)
	v = (v << 5) + v + uint64(i)
	return nonZero(ID(mix(v)))
}

// Named derives a child id from a name.
func (id ID) Named(name string) ID {
	return id.Child(int(NewID(name)))
}

func mix(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	return v
}

func nonZero(id ID) ID {
	if id == NoID {
		return 1
	}
	return id
}
