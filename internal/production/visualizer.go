// Package production provides production integrations: chain visualization for dumps and debugging.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/listx/internal/primitives"
)

// Visualizer renders a chain snapshot.
type Visualizer interface {
	ExportDOT(snap primitives.Snapshot) string
	ExportJSON(snap primitives.Snapshot) ([]byte, error)
	ExportText(snap primitives.Snapshot) string
}

// ChainVisualizer is the stdlib-only implementation of Visualizer.
type ChainVisualizer struct{}

var _ Visualizer = (*ChainVisualizer)(nil)

// ExportDOT generates Graphviz DOT source for the chain. Sentinels are drawn as
// points, next links solid and prev links dashed.
func (v *ChainVisualizer) ExportDOT(snap primitives.Snapshot) string {
	var buf bytes.Buffer
	name := snap.Name
	if name == "" {
		name = "list"
	}
	buf.WriteString(fmt.Sprintf("digraph %q {\n", name))
	buf.WriteString(`  rankdir=LR;
  node [shape=record, fontsize=10];
  edge [fontsize=9];
`)
	buf.WriteString(fmt.Sprintf("  label=\"len=%d version=%d\";\n", snap.Len, snap.Version))

	for _, s := range snap.Slots {
		renderSlot(&buf, s)
	}
	for _, s := range snap.Slots {
		if s.Next != primitives.None {
			buf.WriteString(fmt.Sprintf("  %s -> %s;\n", nodeID(s.Slot), nodeID(s.Next)))
		}
		if s.Prev != primitives.None {
			buf.WriteString(fmt.Sprintf("  %s -> %s [style=dashed];\n", nodeID(s.Slot), nodeID(s.Prev)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the snapshot to indented JSON.
func (v *ChainVisualizer) ExportJSON(snap primitives.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ExportText renders one line per slot, head to tail.
func (v *ChainVisualizer) ExportText(snap primitives.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "list %q len=%d version=%d fingerprint=%s\n", snap.Name, snap.Len, snap.Version, snap.Fingerprint)
	pos := 0
	for _, s := range snap.Slots {
		switch {
		case s.Slot == primitives.Head:
			fmt.Fprintf(&b, "  [head] slot=%d next=%d\n", s.Slot, s.Next)
		case s.Slot == primitives.Tail:
			fmt.Fprintf(&b, "  [tail] slot=%d prev=%d\n", s.Slot, s.Prev)
		default:
			fmt.Fprintf(&b, "  #%d slot=%d prev=%d next=%d value=%s\n", pos, s.Slot, s.Prev, s.Next, s.Value)
			pos++
		}
	}
	return b.String()
}

func nodeID(i primitives.Index) string {
	switch i {
	case primitives.Head:
		return "head"
	case primitives.Tail:
		return "tail"
	default:
		return fmt.Sprintf("n%d", i)
	}
}

func renderSlot(buf *bytes.Buffer, s primitives.SlotInfo) {
	if s.Sentinel {
		buf.WriteString(fmt.Sprintf("  %s [shape=point, xlabel=%q];\n", nodeID(s.Slot), nodeID(s.Slot)))
		return
	}
	buf.WriteString(fmt.Sprintf("  %s [label=%q];\n", nodeID(s.Slot), dotEscape(s.Value)))
}

// dotEscape keeps record-shape control characters out of labels.
func dotEscape(s string) string {
	r := strings.NewReplacer("{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)
	return r.Replace(s)
}
