package main

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("custom\n\n"))

	got, err := ask(reader, io.Discard, "prompt", "fallback")
	if err != nil {
		t.Fatalf("ask() unexpected error: %v", err)
	}
	if got != "custom" {
		t.Errorf("ask() = %q, want %q", got, "custom")
	}

	got, err = ask(reader, io.Discard, "prompt", "fallback")
	if err != nil {
		t.Fatalf("ask() unexpected error: %v", err)
	}
	if got != "fallback" {
		t.Errorf("ask() empty input = %q, want %q", got, "fallback")
	}
}

func TestAskEOFWithPartialLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := ask(reader, io.Discard, "prompt", "fallback")
	if err != nil {
		t.Fatalf("ask() unexpected error: %v", err)
	}
	if got != "no-newline" {
		t.Errorf("ask() = %q, want %q", got, "no-newline")
	}
}

func TestQuoteIdentifier(t *testing.T) {
	if got := quoteIdentifier("fullstack_template"); got != "`fullstack_template`" {
		t.Errorf("quoteIdentifier() = %q", got)
	}
	if got := quoteIdentifier("we`ird"); got != "`we``ird`" {
		t.Errorf("quoteIdentifier() = %q", got)
	}
}
