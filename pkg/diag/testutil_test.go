package diag

import (
	"strings"

	"src.rpncalc.dev/pkg/testutil"
)

func setCulpritMarkers(c testutil.Cleanuper, begin, end string) {
	testutil.Set(c, &culpritLineBegin, begin)
	testutil.Set(c, &culpritLineEnd, end)
}

func setMessageMarkers(c testutil.Cleanuper, start, end string) {
	testutil.Set(c, &messageStart, start)
	testutil.Set(c, &messageEnd, end)
}

// Returns a Context with the given name and source, and a range for the part
// between < and >, with the markers themselves removed.
func contextMarked(name, marked string) *Context {
	from := strings.IndexByte(marked, '<')
	to := strings.IndexByte(marked, '>') - 1
	src := strings.NewReplacer("<", "", ">", "").Replace(marked)
	return NewContext(name, src, Ranging{from, to})
}

func lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
