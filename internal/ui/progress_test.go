package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"phpfmt/internal/driver"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("formatting", []string{"a.php", "b.php"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.php", Stage: driver.StageFormat, Status: driver.StatusWorking})
	require.Equal(t, "formatting", m.items[0].status)
	require.Equal(t, 0, m.finished)

	m.applyEvent(driver.Event{File: "a.php", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.php", Stage: driver.StageWrite, Status: driver.StatusCached})
	// a repeated final event is not counted twice
	m.applyEvent(driver.Event{File: "b.php", Stage: driver.StageWrite, Status: driver.StatusCached})
	m.applyEvent(driver.Event{File: "unknown.php", Stage: driver.StageWrite, Status: driver.StatusDone})
	require.Equal(t, 2, m.finished)

	_, _ = m.Update(doneMsg{})
	view := m.View()
	require.True(t, strings.HasPrefix(stripANSI(view), "done: formatting (2/2)"), view)
	require.Contains(t, view, "a.php")
}

func TestVisibleItemsPrefersActiveFiles(t *testing.T) {
	files := make([]string, maxRows+5)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.php", i)
	}
	m := NewProgressModel("x", files, nil).(*progressModel)
	for i := 0; i < 10; i++ {
		m.applyEvent(driver.Event{File: files[i], Stage: driver.StageWrite, Status: driver.StatusDone})
	}
	visible := m.visibleItems()
	require.Len(t, visible, maxRows)
	require.Equal(t, "f10.php", visible[0].path)
	require.Equal(t, "f09.php", visible[len(visible)-5].path)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short.php", truncate("short.php", 20))
	require.Equal(t, "very/lon...", truncate("very/long/path/file.php", 11))
	require.Equal(t, "ve", truncate("very", 2))
}

func stripANSI(s string) string {
	var b strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			skip = true
		case skip && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}
