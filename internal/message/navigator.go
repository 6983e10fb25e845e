package message

import "strings"

// Navigator tracks the current page of a PageTable.
//
// The first page shown skips pages with no text so a reader never opens on a
// blank screen, while Advance and Retreat land on any present page, including
// empty ones.
type Navigator struct {
	table *PageTable
	page  int
}

// NewNavigator returns a navigator bound to table.
func NewNavigator(table *PageTable) *Navigator {
	n := &Navigator{}
	n.Bind(table)
	return n
}

// Bind replaces the table and moves to its initial page.
func (n *Navigator) Bind(table *PageTable) int {
	n.table = table
	n.page = n.InitialPage()
	return n.page
}

// Table returns the bound table, nil when unbound.
func (n *Navigator) Table() *PageTable {
	return n.table
}

// Page returns the current page index.
func (n *Navigator) Page() int {
	return n.page
}

// PageCount returns the table length, or 0 when nothing is bound.
func (n *Navigator) PageCount() int {
	return n.table.Len()
}

// InitialPage returns the first page with text, or 0 when every page is empty.
func (n *Navigator) InitialPage() int {
	for i := 0; i < n.PageCount(); i++ {
		if text, ok := n.table.Page(i); ok && text != "" {
			return i
		}
	}
	return 0
}

// Seek moves to index if that slot is present.
func (n *Navigator) Seek(index int) bool {
	if !n.table.Present(index) {
		return false
	}
	n.page = index
	return true
}

// Advance moves to the next present page, wrapping past the end.
func (n *Navigator) Advance() int {
	return n.step(1)
}

// Retreat moves to the previous present page, wrapping past the start.
func (n *Navigator) Retreat() int {
	return n.step(-1)
}

func (n *Navigator) step(delta int) int {
	count := n.PageCount()
	if count == 0 {
		return n.page
	}
	page := n.page
	for i := 0; i < count; i++ {
		page = ((page+delta)%count + count) % count
		if n.table.Present(page) {
			n.page = page
			return page
		}
	}
	return n.page
}

// Text returns the raw message for the current page.
func (n *Navigator) Text() string {
	text, _ := n.table.Page(n.page)
	return text
}

// Lines splits the current page into renderable rows. The trailing newline
// every captured line carries produces a final blank row.
func (n *Navigator) Lines() []string {
	text := n.Text()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
