package template

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStore_Offsets(t *testing.T) {
	s := NewStateStore()
	node := new(int)

	assert.Equal(t, 0, s.Offset(node, "id|+1"))
	s.Advance(node, "id|+1", 1)
	s.Advance(node, "id|+1", 1)
	assert.Equal(t, 2, s.Offset(node, "id|+1"))
	assert.Equal(t, 0, s.Offset(node, "other"))
	assert.Equal(t, 0, s.Offset(new(int), "id|+1"))

	s.Advance(nil, "id|+1", 1)
	assert.Equal(t, 0, s.Offset(nil, "id|+1"))

	s.Reset()
	assert.Equal(t, 0, s.Offset(node, "id|+1"))
}

func TestStateStore_Cursor(t *testing.T) {
	s := NewStateStore()
	node := new(int)

	var got []int
	for range 5 {
		got = append(got, s.Cursor(node, 3, 2))
	}
	assert.Equal(t, []int{0, 2, 1, 0, 2}, got)
	assert.Equal(t, 0, s.Cursor(nil, 3, 1))
	assert.Equal(t, 0, s.Cursor(node, 0, 1))
}

func TestStateStore_Concurrent(t *testing.T) {
	s := NewStateStore()
	node := new(int)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.Advance(node, "n", 1)
				s.Cursor(node, 4, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, s.Offset(node, "n"))
}

func TestPath_Stack(t *testing.T) {
	p := NewPath("1")
	p.Push("a")
	p.Push("b")
	assert.Equal(t, "1/a/b", p.String())
	assert.Equal(t, "1", p.Root())
	assert.Equal(t, "b", p.Pop())
	assert.Equal(t, []string{"1", "a"}, p.Segments())
	p.Pop()
	p.Pop()
	assert.Equal(t, "", p.Pop())
	assert.Equal(t, 0, p.Len())
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"1", "a", "..", "b"}, []string{"1", "b"}},
		{[]string{"..", "..", "a"}, []string{"a"}},
		{[]string{"a", ".", "b"}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.in))
	}
	assert.Equal(t, []string{"a", "b"}, splitPath("//a//b/"))
	assert.Empty(t, splitPath("/"))
}
