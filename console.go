package main

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxMessages  = 200
	shownMessages = 4
)

type timedMessage struct {
	Text string
	Time time.Time
}

var (
	messageMu sync.Mutex
	messages  []timedMessage
)

func consoleMessage(msg string) {
	if msg == "" {
		return
	}

	messageMu.Lock()
	messages = append(messages, timedMessage{Text: msg, Time: time.Now()})

	//Remove oldest message if full
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	messageMu.Unlock()
}

func getConsoleMessages() []string {
	messageMu.Lock()
	defer messageMu.Unlock()

	out := make([]string, len(messages))
	for i, msg := range messages {
		out[i] = fmt.Sprintf("[%s] %s", msg.Time.Format("15:04"), msg.Text)
	}
	return out
}

// drawConsole shows the tail of the message log at the bottom of the screen.
func drawConsole(screen *ebiten.Image) {
	msgs := getConsoleMessages()
	if len(msgs) > shownMessages {
		msgs = msgs[len(msgs)-shownMessages:]
	}
	y := float64(screenH) - float64(len(msgs))*16 - 6
	for _, m := range msgs {
		drawText(screen, m, 8, y, color.RGBA{180, 180, 190, 255})
		y += 16
	}
}
