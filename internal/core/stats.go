package core

// Stat is a single labelled read-out of game state for presentation.
type Stat struct {
	Key   string
	Label string
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// StatSnapshot captures the current read-outs exposed by the game.
type StatSnapshot struct {
	Groups []StatGroup
}

// Lookup returns the value stored under key, searching every group.
func (s StatSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, st := range g.Stats {
			if st.Key == key {
				return st.Value, true
			}
		}
	}
	return "", false
}
