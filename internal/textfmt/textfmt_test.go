package textfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 450)
	got := Truncate(long, 400)
	assert.Equal(t, strings.Repeat("a", 400)+"...", got)

	assert.Equal(t, "short", Truncate("short", 400))
	assert.Equal(t, strings.Repeat("b", 400), Truncate(strings.Repeat("b", 400), 400))
	assert.Equal(t, strings.Repeat("c", 300)+"...", Truncate(strings.Repeat("c", 301), 300))
}

func TestTruncateCountsCharacters(t *testing.T) {
	wide := strings.Repeat("日", 300)
	assert.Equal(t, wide, Truncate(wide, 400))

	got := Truncate(strings.Repeat("日", 500), 400)
	assert.Equal(t, strings.Repeat("日", 400)+"...", got)

	assert.Equal(t, "🚀🚀...", Truncate("🚀🚀🚀", 2))
}

func TestTruncateTrimsTrailingSpace(t *testing.T) {
	assert.Equal(t, "one two...", Truncate("one two three", 8))
}

func TestStripHTML(t *testing.T) {
	in := "<p><b>Breaking Bad</b> follows a chemistry teacher&#39;s  descent.</p>"
	assert.Equal(t, "Breaking Bad follows a chemistry teacher's descent.", StripHTML(in))
}

func TestClampAndFirstN(t *testing.T) {
	assert.Equal(t, 10, Clamp(15, 1, 10))
	assert.Equal(t, 1, Clamp(-3, 1, 10))
	assert.Equal(t, 4, Clamp(4, 1, 10))

	assert.Equal(t, []int{1, 2}, FirstN([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1}, FirstN([]int{1}, 3))
	assert.Empty(t, FirstN([]int{1}, -1))
}

func TestOr(t *testing.T) {
	assert.Equal(t, "N/A", Or("  ", "N/A"))
	assert.Equal(t, "x", Or("x", "N/A"))
}
