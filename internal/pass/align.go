package pass

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// AlignPlaceholders pads the output so that every placeholder sharing an index
// lines up. format is a fmt verb string taking the index (for example
// "\x02ALIGN%d\x03"); indices 0..count are processed. Consecutive lines holding
// the same placeholder form a group and are padded to the farthest column of
// the group. Placeholders are removed afterwards.
func (w *Walker) AlignPlaceholders(format string, count int) {
	w.SetCode(AlignPlaceholders(w.Code(), format, count, w.NewLine))
}

// AlignPlaceholders is the buffer-free form of Walker.AlignPlaceholders.
func AlignPlaceholders(code, format string, count int, newline string) string {
	for j := 0; j <= count; j++ {
		ph := fmt.Sprintf(format, j)
		switch strings.Count(code, ph) {
		case 0:
			continue
		case 1:
			code = strings.Replace(code, ph, "", 1)
			continue
		}

		lines := strings.Split(code, newline)
		for _, group := range placeholderGroups(lines, ph) {
			farthest := 0
			for _, idx := range group {
				farthest = max(farthest, columnOf(lines[idx], ph))
			}
			for _, idx := range group {
				if delta := farthest - columnOf(lines[idx], ph); delta > 0 {
					lines[idx] = strings.Replace(lines[idx], ph, strings.Repeat(" ", delta)+ph, 1)
				}
			}
		}
		code = strings.ReplaceAll(strings.Join(lines, newline), ph, "")
	}
	return code
}

// placeholderGroups lists runs of consecutive line indexes containing ph.
func placeholderGroups(lines []string, ph string) [][]int {
	var groups [][]int
	var cur []int
	for idx, line := range lines {
		if strings.Contains(line, ph) {
			cur = append(cur, idx)
			continue
		}
		if len(cur) > 0 {
			groups = append(groups, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// columnOf is the display width of line before ph.
func columnOf(line, ph string) int {
	return runewidth.StringWidth(line[:strings.Index(line, ph)])
}
