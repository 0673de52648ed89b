package main

import (
	"testing"

	"github.com/reusee/tabi/tablang"
)

func TestOutputPath(t *testing.T) {
	for _, c := range []struct {
		in        string
		out       string
		extension string
		expected  string
	}{
		{"song.tab", "", ".txt", "song-output.txt"},
		{"dir/song.tab", "", ".txt", "dir/song-output.txt"},
		{"song", "", ".txt", "song-output.txt"},
		{"song.tab", "rendered.md", ".txt", "rendered.txt"},
		{"song.tab", "rendered", ".tab", "rendered.tab"},
	} {
		if got := outputPath(c.in, c.out, c.extension); got != c.expected {
			t.Fatalf("got %q, want %q", got, c.expected)
		}
	}
}

func TestStaffCount(t *testing.T) {
	for _, c := range []struct {
		source   string
		expected int
	}{
		{"", 0},
		{"E A D", 1},
		{"E A D 0 3 5 ,", 1},
		{"E 0 , A 1 ,", 2},
		{"E A 0 1 D G 2 3", 2},
	} {
		tokens, err := tablang.NewTokenizer(c.source).Tokens()
		if err != nil {
			t.Fatalf("got %v", err)
		}
		if got := staffCount(tokens); got != c.expected {
			t.Fatalf("%q: got %d, want %d", c.source, got, c.expected)
		}
	}
}
