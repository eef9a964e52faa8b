package brain

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/maxludovicohofer/act-by-belief/need"
)

// Watch registers a read-only probe whose result joins the read view under
// name. Probes are the explicit alternative to digging values out of host
// objects: whoever owns a value registers it.
func (b *Brain) Watch(name string, probe func() any) {
	b.probes[name] = probe
}

// View snapshots every registered need and probe into a display map, keyed
// by the human-readable names they registered under. Needs render as their
// tier-adjusted importance, list values join with commas, and entries that
// render empty are left out entirely.
func (b *Brain) View() map[string]string {
	view := make(map[string]string, len(b.needs)+len(b.probes))
	for name, e := range b.needs {
		if s := renderValue(e.belief.Value()); s != "" {
			view[name] = s
		}
	}
	for name, probe := range b.probes {
		if s := renderValue(probe()); s != "" {
			view[name] = s
		}
	}
	return view
}

// renderValue formats a belief value for display. Empty string means the
// value should not show up at all: nils, absent needs, empty strings and
// empty lists all disappear from the view.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case need.Need:
		if t.Intensity() == 0 {
			return ""
		}
		return strconv.FormatFloat(t.Importance(), 'f', 3, 64)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Len() == 0 {
			return ""
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
