package main

import (
	"strings"
	"testing"
)

func TestConsoleMessageCap(t *testing.T) {
	messageMu.Lock()
	messages = nil
	messageMu.Unlock()

	for i := 0; i < maxMessages+25; i++ {
		consoleMessage("msg")
	}
	if got := len(getConsoleMessages()); got != maxMessages {
		t.Fatalf("message count = %d; want %d", got, maxMessages)
	}
}

func TestConsoleMessageIgnoresEmpty(t *testing.T) {
	messageMu.Lock()
	messages = nil
	messageMu.Unlock()

	consoleMessage("")
	if got := len(getConsoleMessages()); got != 0 {
		t.Fatalf("empty message was stored, count = %d", got)
	}
}

func TestConsoleMessageTimestamped(t *testing.T) {
	messageMu.Lock()
	messages = nil
	messageMu.Unlock()

	consoleMessage("hello")
	msgs := getConsoleMessages()
	if len(msgs) != 1 {
		t.Fatalf("message count = %d; want 1", len(msgs))
	}
	if !strings.HasPrefix(msgs[0], "[") || !strings.HasSuffix(msgs[0], "] hello") {
		t.Fatalf("formatted message = %q", msgs[0])
	}
}
