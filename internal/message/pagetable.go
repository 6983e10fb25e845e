package message

// Slot is one addressable position in a PageTable.
type Slot struct {
	Text    string
	Present bool
}

// Gap is a slot that was never assigned text.
var Gap = Slot{}

// Text returns a present slot holding s.
func Text(s string) Slot {
	return Slot{Text: s, Present: true}
}

// PageTable maps page indexes to message text. It is never mutated after
// construction, so a single table can back any number of navigators.
type PageTable struct {
	slots []Slot
}

// NewPageTable builds a table from explicit slots. A table with no slots is
// represented as nil, meaning the entry carries no messages at all.
func NewPageTable(slots ...Slot) *PageTable {
	if len(slots) == 0 {
		return nil
	}
	copied := make([]Slot, len(slots))
	copy(copied, slots)
	return &PageTable{slots: copied}
}

// Len reports the number of slots; a nil table has none.
func (t *PageTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// Page returns the text stored at index and whether the slot is present.
func (t *PageTable) Page(index int) (string, bool) {
	if t == nil || index < 0 || index >= len(t.slots) {
		return "", false
	}
	slot := t.slots[index]
	return slot.Text, slot.Present
}

// Present reports whether index holds text, possibly empty.
func (t *PageTable) Present(index int) bool {
	_, ok := t.Page(index)
	return ok
}

// Slots returns a copy of every slot in index order.
func (t *PageTable) Slots() []Slot {
	if t == nil {
		return nil
	}
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}
