package catalog

import (
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/message"
)

// MessageNoteHook parses every entry's note and attaches the resulting page
// table. Entries without message tags end up with none.
func MessageNoteHook(log logr.Logger) LoadHook {
	return func(entries []*Entry) {
		withMessages := 0
		for _, entry := range entries {
			entry.Messages = message.Parse(entry.Note)
			if entry.Messages == nil {
				continue
			}
			withMessages++
			log.V(1).Info("message pages attached", "id", entry.ID, "name", entry.Name, "pages", entry.Messages.Len())
		}
		log.Info("message notes processed", "entries", len(entries), "messageEntries", withMessages)
	}
}
