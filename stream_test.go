// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "testing"

func TestStreamParserWordCommand(t *testing.T) {
	s := NewStreamParser([]byte("G04 comment*D10*"))
	words, err := s.NextCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != "G04 comment" {
		t.Fatalf("words = %#v, want [\"G04 comment\"]", words)
	}
	words, err = s.NextCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != "D10" {
		t.Fatalf("words = %#v, want [\"D10\"]", words)
	}
	words, err = s.NextCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words != nil {
		t.Fatalf("expected nil at EOF, got %#v", words)
	}
}

func TestStreamParserExtendedCommand(t *testing.T) {
	s := NewStreamParser([]byte("%FSLAX26Y26*MOMM*%"))
	words, err := s.NextCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"FSLAX26Y26", "MOMM"}
	if len(words) != len(want) {
		t.Fatalf("words = %#v, want %#v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestStreamParserUnterminatedWord(t *testing.T) {
	s := NewStreamParser([]byte("D10"))
	if _, err := s.NextCommand(); err != ErrUnterminatedCommand {
		t.Fatalf("error = %v, want ErrUnterminatedCommand", err)
	}
}

func TestStreamParserUnterminatedExtended(t *testing.T) {
	s := NewStreamParser([]byte("%FSLAX26Y26*"))
	if _, err := s.NextCommand(); err != ErrUnterminatedCommand {
		t.Fatalf("error = %v, want ErrUnterminatedCommand", err)
	}
}

func TestStreamParserLineTracking(t *testing.T) {
	s := NewStreamParser([]byte("D10*\nD11*\nD12*"))
	for i := 0; i < 2; i++ {
		if _, err := s.NextCommand(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if s.Line() != 3 {
		t.Errorf("Line() = %d, want 3", s.Line())
	}
}

func TestStreamParserRoundTrip(t *testing.T) {
	input := "D10*X0Y0D02*G01*M02*"
	s := NewStreamParser([]byte(input))
	var reconstructed string
	for {
		words, err := s.NextCommand()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if words == nil {
			break
		}
		for _, w := range words {
			reconstructed += w + "*"
		}
	}
	if reconstructed != input {
		t.Errorf("reconstructed = %q, want %q", reconstructed, input)
	}
}
