package catalog

// Party carries the engagement state the usage rules depend on.
type Party struct {
	Battle bool
}

// InBattle reports whether the party is in an active engagement.
func (p *Party) InBattle() bool {
	return p != nil && p.Battle
}

// Engagement is the query the policy needs from the host.
type Engagement interface {
	InBattle() bool
}

// Policy decides how an entry behaves when it is used from the menu.
type Policy struct {
	Engagement Engagement
}

func (p Policy) inBattle() bool {
	return p.Engagement != nil && p.Engagement.InBattle()
}

// ShouldOpenViewer reports whether activating e opens the message viewer
// instead of the default handling.
func (p Policy) ShouldOpenViewer(e *Entry) bool {
	return e.HasMessages()
}

// IsOccasionOK applies the entry's occasion to the current engagement state.
// Message entries are menu-only regardless of their declared occasion.
func (p Policy) IsOccasionOK(e *Entry) bool {
	if e == nil {
		return false
	}
	inBattle := p.inBattle()
	if e.HasMessages() {
		return !inBattle && (e.Occasion == OccasionAlways || e.Occasion == OccasionMenu)
	}
	switch e.Occasion {
	case OccasionAlways:
		return true
	case OccasionBattle:
		return inBattle
	case OccasionMenu:
		return !inBattle
	default:
		return false
	}
}

// CanUse reports whether e is usable right now, taking stock into account.
func (p Policy) CanUse(e *Entry) bool {
	if !p.IsOccasionOK(e) {
		return false
	}
	return !e.Consumable || e.Quantity > 0
}

// Consume applies the standard usage cost of e and reports whether the
// quantity changed.
func Consume(e *Entry) bool {
	if e == nil || !e.Consumable || e.Quantity <= 0 {
		return false
	}
	e.Quantity--
	return true
}
