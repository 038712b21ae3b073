package primitives

// SlotInfo describes one slot of the chain as seen by a walk from Head to Tail.
type SlotInfo struct {
	Slot     Index  `json:"slot" yaml:"slot"`
	Prev     Index  `json:"prev" yaml:"prev"`
	Next     Index  `json:"next" yaml:"next"`
	Sentinel bool   `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Snapshot is a read-only picture of a chain, used by visualizers and dumps.
type Snapshot struct {
	Name        string     `json:"name" yaml:"name"`
	Len         int        `json:"len" yaml:"len"`
	Version     uint64     `json:"version" yaml:"version"`
	Fingerprint string     `json:"fingerprint" yaml:"fingerprint"`
	Slots       []SlotInfo `json:"slots" yaml:"slots"`
}

// Walk returns the slots in chain order, head sentinel first and tail sentinel last.
// format renders each stored value.
func (a *Arena[T]) Walk(format func(T) string) []SlotInfo {
	out := make([]SlotInfo, 0, a.count+2)
	for cur := Head; cur != None; cur = a.slots[cur].next {
		s := a.slots[cur]
		info := SlotInfo{Slot: cur, Prev: s.prev, Next: s.next, Sentinel: IsSentinel(cur)}
		if !info.Sentinel {
			info.Value = format(s.value)
		}
		out = append(out, info)
	}
	return out
}
