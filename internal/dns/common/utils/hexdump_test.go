package utils

import "testing"

func TestHexGroups(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0xbe}, "be"},
		{[]byte{0xbe, 0xef}, "beef"},
		{[]byte{0xbe, 0xef, 0x01, 0x00, 0x00}, "beef 0100 00"},
		{[]byte{0x00, 0x01, 0x0a, 0xff}, "0001 0aff"},
		{[]byte{0x01, 0x02, 0x03}, "0102 03"},
		{[]byte{0xbe, 0xef, 0x01, 0x00, 0x00, 0x01}, "beef 0100 0001"},
	}
	for _, tc := range cases {
		if got := HexGroups(tc.in); got != tc.want {
			t.Errorf("HexGroups(%x) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
