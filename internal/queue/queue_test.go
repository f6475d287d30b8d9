package queue

import (
	"fmt"
	"testing"
)

func assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(message, params...)
	}
}

func expectInt(t *testing.T, want, got int) {
	t.Helper()
	if want != got {
		t.Fatalf("expecting %d, got %d", want, got)
	}
}

func expectBool(t *testing.T, want, got bool) {
	t.Helper()
	if want != got {
		t.Fatalf("expecting %v, got %v", want, got)
	}
}

func TestComputeSize(t *testing.T) {
	for i := 0; i <= 33; i++ {
		name := fmt.Sprintf("%d elements", i)
		t.Run(name, func(t *testing.T) {
			size := computeSize(i)
			assert(t, size >= minSize, "expecting at least %d, got %d", minSize, size)
			assert(t, size&(size+1) == 0, "expecting 2^n - 1, got %b", size)
			assert(t, size >= i, "expecting size >= %d, got %d", i, size)
			if size > minSize {
				assert(t, (size>>1) < i, "expecting size/2 < %d, got size %d", i, size)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	q := New[int]()
	expectInt(t, minSize+1, len(q.items))
	expectInt(t, 0, q.head)
	expectInt(t, 0, q.tail)
	expectInt(t, minSize, q.size)
}

func TestPrefilled(t *testing.T) {
	items := make([]int, minSize+1)
	for i := range items {
		items[i] = i
	}

	q := New[int](items[:minSize]...)
	expectInt(t, 0, q.head)
	expectInt(t, minSize, q.tail)
	expectInt(t, minSize, q.size)
	expectInt(t, minSize+1, len(q.items))
	for i := range items[:minSize] {
		expectInt(t, i, q.items[i])
	}

	q = New[int](items...)
	expectInt(t, 0, q.head)
	expectInt(t, minSize+1, q.tail)
	expectInt(t, (minSize<<1)+1, q.size)
	expectInt(t, (minSize<<1)+2, len(q.items))
	for i := range items {
		expectInt(t, i, q.items[i])
	}
}

func TestGrow(t *testing.T) {
	items := make([]int, minSize)
	q := New[int](items...)
	expectInt(t, minSize, q.size)
	q.Append(1)
	newSize := (minSize << 1) + 1
	expectInt(t, newSize, q.size)
	for i := 0; i < minSize; i++ {
		q.Append(i)
		expectInt(t, newSize, q.size)
	}
	q.Append(1)
	expectInt(t, (newSize<<1)+1, q.size)
}

func TestShrink(t *testing.T) {
	halfSize := (minSize << 1) + 1
	fullSize := (halfSize << 1) + 1
	items := make([]int, fullSize)
	q := New[int](items...)
	expectInt(t, fullSize, q.size)

	q.tail = minSize + 1
	q.head = fullSize
	q.First()
	expectInt(t, fullSize, q.size)

	q.tail = minSize
	q.head = fullSize - 1
	q.First()
	expectInt(t, fullSize, q.size)
	q.First()
	expectInt(t, halfSize, q.size)

	q.tail = 1
	q.head = q.size
	q.First()
	expectInt(t, minSize, q.size)
}

func TestIsEmpty(t *testing.T) {
	q := New[int]()
	expectBool(t, true, q.IsEmpty())
	q.Append(1)
	expectBool(t, false, q.IsEmpty())
	q.First()
	expectBool(t, true, q.IsEmpty())
	q = New[int](1)
	expectBool(t, false, q.IsEmpty())
}

func TestLen(t *testing.T) {
	l := (minSize << 1) + 2
	samples := []struct {
		head, tail, l int
	}{
		{0, 1, 1},
		{1, 1, 0},
		{l - 2, 1, 3},
	}

	items := make([]int, l-1)
	q := New[int](items...)
	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			q.head = s.head
			q.tail = s.tail
			expectInt(t, s.l, q.Len())
		})
	}
}

func TestItems(t *testing.T) {
	l := (minSize << 1) + 2
	samples := []struct {
		head, tail, l int
	}{
		{0, 1, 1},
		{1, 1, 0},
		{2, 0, l - 2},
		{l - 2, 2, 4},
	}

	items := make([]int, l)
	for i := range items {
		items[i] = i
	}
	q := New[int]()
	q.items = items
	q.size = l - 1

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			q.head = s.head
			q.tail = s.tail
			items := q.Items()
			expectInt(t, s.l, len(items))
			v := s.head
			for _, i := range items {
				expectInt(t, v, i)
				v = (v + 1) & q.size
			}
		})
	}
}

func TestAppend(t *testing.T) {
	q := New[int]()

	q.Append(11)
	expectInt(t, 0, q.head)
	expectInt(t, 1, q.tail)
	expectInt(t, 11, q.items[0])

	q.Append(12)
	expectInt(t, 0, q.head)
	expectInt(t, 2, q.tail)
	expectInt(t, 12, q.items[1])

	q.head = minSize
	q.tail = minSize
	q.Append(13)
	expectInt(t, minSize, q.head)
	expectInt(t, 0, q.tail)
	expectInt(t, 13, q.items[minSize])

	q.head = 1
	q.tail = 0
	q.Append(14)
	expectInt(t, (minSize<<1)+1, q.size)
	expectInt(t, 0, q.head)
	expectInt(t, minSize+1, q.tail)
	expectInt(t, 12, q.items[0])
	expectInt(t, 14, q.items[minSize])
}

func TestPrepend(t *testing.T) {
	q := New[int]()

	q.Prepend(11)
	expectInt(t, minSize, q.head)
	expectInt(t, 0, q.tail)
	expectInt(t, 11, q.items[minSize])

	q.Prepend(12)
	expectInt(t, minSize-1, q.head)
	expectInt(t, 0, q.tail)
	expectInt(t, 12, q.items[q.head])

	q.head = 1
	q.tail = 0
	q.Prepend(13)
	expectInt(t, (minSize<<1)+1, q.size)
	expectInt(t, 0, q.head)
	expectInt(t, minSize+1, q.tail)
	expectInt(t, 13, q.items[q.head])
}

func TestFirst(t *testing.T) {
	q := New[int]()
	for i := range q.items {
		q.items[i] = i + 10
	}

	i, f := q.First()
	expectInt(t, 0, i)
	expectBool(t, false, f)

	q.tail = 2
	i, f = q.First()
	expectInt(t, 10, i)
	expectBool(t, true, f)
	expectInt(t, 1, q.head)
	expectInt(t, 2, q.tail)

	q.tail = q.head
	i, f = q.First()
	expectInt(t, 0, i)
	expectBool(t, false, f)

	q.head = minSize
	q.tail = 1
	i, f = q.First()
	expectInt(t, 10+minSize, i)
	expectBool(t, true, f)
	expectInt(t, 0, q.head)
	expectInt(t, 1, q.tail)
}

func TestLast(t *testing.T) {
	q := New[int]()
	for i := range q.items {
		q.items[i] = i + 10
	}

	i, f := q.Last()
	expectInt(t, 0, i)
	expectBool(t, false, f)

	q.tail = 2
	i, f = q.Last()
	expectInt(t, 11, i)
	expectBool(t, true, f)
	expectInt(t, 0, q.head)
	expectInt(t, 1, q.tail)

	q.tail = q.head
	i, f = q.Last()
	expectInt(t, 0, i)
	expectBool(t, false, f)

	q.head = minSize
	q.tail = 1
	i, f = q.Last()
	expectInt(t, 10, i)
	expectBool(t, true, f)
	expectInt(t, minSize, q.head)
	expectInt(t, 0, q.tail)
}
