package derive

import (
	"cmp"
	"go/token"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

// visualizer renders the validation result of an enum per ordinal:
//
//	ok:   0 apple
//	FAIL: 1 ?        // missing
//	ok:   2 cherry
//	ok:   3 enumSize // sentinel
type visualizer struct {
	rows []row
}

func newVisualizer() *visualizer {
	return &visualizer{}
}

// Row groups. Rows are sorted by group first.
const (
	groupMember = iota
	groupOverflow
	groupSentinel
)

type row struct {
	group   int
	ordinal int64
	text    string // overrides ordinal
	pos     token.Pos
	name    string

	ok     bool
	reason string
}

func (r row) ordinalString() string {
	if r.text != "" {
		return r.text
	}
	return strconv.FormatInt(r.ordinal, 10)
}

// IsValid reports whether all rows are ok.
func (vis visualizer) IsValid() bool {
	for _, r := range vis.rows {
		if !r.ok {
			return false
		}
	}
	return true
}

func (vis *visualizer) OK(r row, reason string) {
	r.ok, r.reason = true, reason
	vis.rows = append(vis.rows, r)
}

func (vis *visualizer) Fail(r row, reason string) {
	r.ok, r.reason = false, reason
	vis.rows = append(vis.rows, r)
}

// String returns the rows as an aligned table. Trailing spaces are trimmed.
func (vis visualizer) String() string {
	rows := slices.Clone(vis.rows)
	slices.SortStableFunc(rows, func(a, b row) int {
		if c := cmp.Compare(a.group, b.group); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ordinal, b.ordinal); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 1, 1, 1, ' ', 0)

	for i, r := range rows {
		if i != 0 {
			io.WriteString(tw, "\n")
		}

		if r.ok {
			io.WriteString(tw, "ok:\t")
		} else {
			io.WriteString(tw, "FAIL:\t")
		}

		io.WriteString(tw, r.ordinalString())
		io.WriteString(tw, "\t")
		io.WriteString(tw, r.name)
		io.WriteString(tw, "\t")

		if r.reason != "" {
			io.WriteString(tw, "// ")
			io.WriteString(tw, r.reason)
		}
	}

	tw.Flush()

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
