package handlers

import (
	"iter"
	"strings"
)

// byPiece yields the pieces of s between occurrences of sep, in order.
func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// moves splits one websocket message into the non-blank moves it carries.
func moves(message string) []string {
	var out []string
	for _, piece := range byPiece(strings.TrimSpace(message), "\n") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
