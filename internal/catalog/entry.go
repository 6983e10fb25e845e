package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kk-code-lab/msgitem/internal/message"
)

// Occasion says where an entry may be used.
type Occasion int

const (
	OccasionAlways Occasion = iota
	OccasionBattle
	OccasionMenu
	OccasionNever
)

var occasionNames = map[Occasion]string{
	OccasionAlways: "always",
	OccasionBattle: "battle",
	OccasionMenu:   "menu",
	OccasionNever:  "never",
}

func (o Occasion) String() string {
	if name, ok := occasionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("occasion(%d)", int(o))
}

// UnmarshalJSON accepts either the occasion name or its number.
func (o *Occasion) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if _, ok := occasionNames[Occasion(n)]; !ok {
			return fmt.Errorf("unknown occasion %d", n)
		}
		*o = Occasion(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("occasion must be a name or number: %s", data)
	}
	for occ, name := range occasionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			*o = occ
			return nil
		}
	}
	return fmt.Errorf("unknown occasion %q", s)
}

// Entry is one item record of the catalog.
type Entry struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Note        string   `json:"note,omitempty"`
	Occasion    Occasion `json:"occasion"`
	Consumable  bool     `json:"consumable"`
	Quantity    int      `json:"quantity"`

	// Messages is attached by the message note hook once the catalog is ready.
	Messages *message.PageTable `json:"-"`
}

// HasMessages reports whether the entry opens the message viewer.
func (e *Entry) HasMessages() bool {
	return e != nil && e.Messages != nil
}
