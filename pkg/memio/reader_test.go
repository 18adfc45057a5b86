package memio

import "testing"

func TestReadCStringNullAddr(t *testing.T) {
	if got := ReadCString(0, 0); got != "NULL" {
		t.Fatalf("ReadCString(0, 0) = %q, want NULL", got)
	}
}

func TestIndexZero(t *testing.T) {
	cases := []struct {
		in   []byte
		want int
	}{
		{[]byte{1, 2, 0, 3}, 2},
		{[]byte{1, 2, 3}, -1},
		{[]byte{0}, 0},
		{[]byte{}, -1},
	}
	for _, c := range cases {
		if got := indexZero(c.in); got != c.want {
			t.Fatalf("indexZero(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
