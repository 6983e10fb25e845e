package message

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxPageIndex is the highest page number a block may declare. Larger
// qualifiers are not treated as delimiters.
const MaxPageIndex = 999

var (
	openDefaultPattern = regexp.MustCompile(`(?i)^\s*<(?:MESSAGE ITEM|ITEM MESSAGE)>\s*$`)
	openPagePattern    = regexp.MustCompile(`(?i)^\s*<(?:MESSAGE ITEM|ITEM MESSAGE):[ \t]*PAGE[ \t]+(\d+)>\s*$`)
	closePattern       = regexp.MustCompile(`(?i)^\s*</(?:MESSAGE ITEM|ITEM MESSAGE)>\s*$`)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Parse scans a note and returns its page table, or nil when the note has no
// opening tag. Every index up to the highest opened page is present in the
// result; pages that were never opened hold the empty string.
func Parse(raw string) *PageTable {
	var (
		pages     []*strings.Builder
		capturing bool
		target    int
	)

	for _, line := range strings.Split(lineBreaks.Replace(raw), "\n") {
		switch {
		case openDefaultPattern.MatchString(line):
			pages = openPage(pages, 0)
			target = 0
			capturing = true
		case closePattern.MatchString(line):
			capturing = false
			target = 0
		default:
			if index, ok := pageQualifier(line); ok {
				pages = openPage(pages, index)
				target = index
				capturing = true
				continue
			}
			if capturing {
				pages[target].WriteString(line)
				pages[target].WriteByte('\n')
			}
		}
	}

	if pages == nil {
		return nil
	}

	slots := make([]Slot, len(pages))
	for i, b := range pages {
		if b == nil {
			slots[i] = Text("")
			continue
		}
		slots[i] = Text(b.String())
	}
	return &PageTable{slots: slots}
}

func pageQualifier(line string) (int, bool) {
	match := openPagePattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	index, err := strconv.Atoi(match[1])
	if err != nil || index > MaxPageIndex {
		return 0, false
	}
	return index, true
}

// openPage restarts accumulation for index, growing pages as needed.
func openPage(pages []*strings.Builder, index int) []*strings.Builder {
	for len(pages) <= index {
		pages = append(pages, nil)
	}
	pages[index] = &strings.Builder{}
	return pages
}
