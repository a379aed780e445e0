package utils

import (
	"encoding/hex"
	"strings"
)

// HexGroups renders data as lowercase hex in 2-byte groups separated by
// spaces, e.g. "beef 0100 0001". An odd trailing byte forms its own group.
func HexGroups(data []byte) string {
	groups := make([]string, 0, (len(data)+1)/2)
	for i := 0; i < len(data); i += 2 {
		end := min(i+2, len(data))
		groups = append(groups, hex.EncodeToString(data[i:end]))
	}
	return strings.Join(groups, " ")
}
