package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is what a cell holds: its adjacent mine count (0 to 8) or [Mine].
type Value int8

const Mine Value = -1

func (v Value) String() string {
	switch {
	case v == Mine:
		return "*"
	case 0 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

type Values []Value

func (vs Values) ToString(width int) string {
	var b strings.Builder
	for y := range len(vs) / width {
		for x := range width {
			fmt.Fprint(&b, vs[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
