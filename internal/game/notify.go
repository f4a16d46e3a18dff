package game

// Notification lifetimes in seconds.
const (
	NoticeTTL        = 2.8
	OfflineNoticeTTL = 4.0
)

// Notification is a short-lived message for display only.
type Notification struct {
	Text string
	Age  float64
	TTL  float64
}

// Remaining returns the seconds left before the notification expires.
func (n Notification) Remaining() float64 { return n.TTL - n.Age }

// Notifications returns the live notifications, oldest first.
func (g *State) Notifications() []Notification {
	return append([]Notification(nil), g.notes...)
}

func (g *State) notify(text string) { g.notifyFor(text, NoticeTTL) }

func (g *State) notifyFor(text string, ttl float64) {
	g.notes = append(g.notes, Notification{Text: text, TTL: ttl})
}

func (g *State) ageNotifications(dt float64) {
	kept := g.notes[:0]
	for _, n := range g.notes {
		n.Age += dt
		if n.Age < n.TTL {
			kept = append(kept, n)
		}
	}
	g.notes = kept
}
