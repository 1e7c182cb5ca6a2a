package textbuf

// Caret is a cursor and selection pair.
type Caret struct {
	Cursor, Selection int
}

// Mutation is one invertible edit: at Position, Deleted was replaced by Inserted.
// Before and After, when set, are the caret on either side of the edit.
type Mutation struct {
	Position int
	Deleted  []rune
	Inserted []rune
	Before   *Caret
	After    *Caret
}

// Apply re-performs the edit and returns the caret position after it.
func (m Mutation) Apply(b *Buffer) (int, error) {
	if err := b.DeleteInsert(m.Position, m.Position+len(m.Deleted), m.Inserted); err != nil {
		return 0, err
	}
	return m.Position + len(m.Inserted), nil
}

// Revert undoes the edit and returns the caret position after it.
func (m Mutation) Revert(b *Buffer) (int, error) {
	if err := b.DeleteInsert(m.Position, m.Position+len(m.Inserted), m.Deleted); err != nil {
		return 0, err
	}
	return m.Position + len(m.Deleted), nil
}

// History is a linear undo/redo stack. Pushing discards everything past the cursor.
type History struct {
	muts   []Mutation
	cursor int
}

func NewHistory() *History { return &History{} }

// Push records replacing [start, end) of b with ins. It must be called before the edit is applied.
func (h *History) Push(b *Buffer, start, end int, ins []rune) {
	h.Record(Mutation{Position: start, Deleted: b.Slice(start, end), Inserted: append([]rune(nil), ins...)})
}

// Record appends an already built mutation.
func (h *History) Record(m Mutation) {
	h.muts = append(h.muts[:h.cursor], m)
	h.cursor = len(h.muts)
}

// Undo steps back and returns the mutation to revert.
func (h *History) Undo() (Mutation, bool) {
	if h.cursor == 0 {
		return Mutation{}, false
	}
	h.cursor--
	return h.muts[h.cursor], true
}

// Redo steps forward and returns the mutation to reapply.
func (h *History) Redo() (Mutation, bool) {
	if h.cursor >= len(h.muts) {
		h.cursor = len(h.muts)
		return Mutation{}, false
	}
	m := h.muts[h.cursor]
	h.cursor++
	return m, true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.muts) }
func (h *History) Len() int      { return len(h.muts) }

// Reset drops all recorded mutations.
func (h *History) Reset() {
	h.muts = h.muts[:0]
	h.cursor = 0
}
