package bmap

import "testing"

func expectInt(t *testing.T, want, got int) {
	t.Helper()
	if want != got {
		t.Errorf("expecting %d, got %d", want, got)
	}
}

func expectBool(t *testing.T, want, got bool) {
	t.Helper()
	if want != got {
		t.Errorf("expecting %v, got %v", want, got)
	}
}

func TestEmptyMap(t *testing.T) {
	m := New[int](1)

	en, found := m.Get([]byte{})
	expectInt(t, 0, en)
	expectBool(t, false, found)

	en, found = m.Get([]byte{1, 2, 3})
	expectInt(t, 0, en)
	expectBool(t, false, found)
}

func TestEmptyKey(t *testing.T) {
	m := New[int](1)
	empty := []byte{}

	m.Set([]byte("foo"), 123)
	en, found := m.Get(empty)
	expectInt(t, 0, en)
	expectBool(t, false, found)

	m.Set(empty, 345)
	en, found = m.Get(empty)
	expectInt(t, 345, en)
	expectBool(t, true, found)
}

func TestKey(t *testing.T) {
	m := New[int](2)
	key := []byte{1, 2, 3}
	key2 := []byte{1, 2}

	m.Set(key, 111)
	m.Set(key2, 222)

	en, found := m.Get(key)
	expectInt(t, 111, en)
	expectBool(t, true, found)

	key = key[:2]
	en, found = m.Get(key)
	expectInt(t, 222, en)
	expectBool(t, true, found)
}

func TestOverflow(t *testing.T) {
	m := New[int](2)
	m.Set([]byte{1}, 1)
	m.Set([]byte{2}, 2)
	m.Set([]byte{1}, 3)

	defer func() {
		recover()
	}()
	m.Set([]byte{3}, 3)
	t.Error("panic expected")
}
