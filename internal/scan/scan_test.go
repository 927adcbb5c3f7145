package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorPairs(t *testing.T) {
	cur := NewCursor("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE")

	key, value, ok := cur.Pair()
	require.True(t, ok)
	assert.Equal(t, "FREQ", key)
	assert.Equal(t, "WEEKLY", value)

	key, value, ok = cur.Pair()
	require.True(t, ok)
	assert.Equal(t, "INTERVAL", key)
	assert.Equal(t, "2", value)

	key, value, ok = cur.Pair()
	require.True(t, ok)
	assert.Equal(t, "BYDAY", key)
	assert.Equal(t, "MO,WE", value)

	assert.True(t, cur.Done())
	assert.False(t, cur.Dangling())
	assert.Equal(t, 34, cur.Pos())
}

func TestCursorMissingEquals(t *testing.T) {
	cur := NewCursor("FREQ=DAILY;COUNT")
	_, _, ok := cur.Pair()
	require.True(t, ok)
	_, seg, ok := cur.Pair()
	assert.False(t, ok)
	assert.Equal(t, "COUNT", seg)
}

func TestCursorStopsAtTerminator(t *testing.T) {
	cur := NewCursor("FREQ=DAILY\nDTSTART:20240101")
	key, value, ok := cur.Pair()
	require.True(t, ok)
	assert.Equal(t, "FREQ", key)
	assert.Equal(t, "DAILY", value)
	assert.True(t, cur.Done())
	assert.Equal(t, 10, cur.Pos())
}

func TestCursorDanglingSemicolon(t *testing.T) {
	cur := NewCursor("FREQ=DAILY;")
	_, _, ok := cur.Pair()
	require.True(t, ok)
	assert.True(t, cur.Done())
	assert.True(t, cur.Dangling())
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-5", -5, true},
		{"366", 366, true},
		{"", 0, false},
		{"-", 0, false},
		{"1x", 0, false},
		{"+1", 0, false},
		{" 1", 0, false},
	}
	for _, tt := range tests {
		got, ok := Int(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestUintRejectsNegative(t *testing.T) {
	_, ok := Uint("-3")
	assert.False(t, ok)
	got, ok := Uint("17")
	require.True(t, ok)
	assert.Equal(t, 17, got)
}

func TestEachElement(t *testing.T) {
	var got []string
	ok := EachElement("1,2,3", func(e string) bool {
		got = append(got, e)
		return true
	})
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.False(t, EachElement("", func(string) bool { return true }))
	assert.False(t, EachElement("1,,3", func(string) bool { return true }))
	assert.False(t, EachElement("1,2,", func(string) bool { return true }))
	assert.False(t, EachElement("1,x", func(e string) bool { return e == "1" }))
}

func TestBufferGrowth(t *testing.T) {
	b := NewBuffer(4)
	b.Text("FREQ=")
	b.Text("WEEKLY")
	b.Byte(';')
	b.Int(-12)
	b.Pad(7, 2)
	b.Pad(2024, 4)
	assert.Equal(t, "FREQ=WEEKLY;-12072024", b.String())
	assert.Equal(t, 21, b.Len())
}
