package client

// Websocket client that tails the live activity feed.

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

// TailFeed connects to the live feed endpoint and prints entries until
// interrupted.
func TailFeed(apiURL string) error {
	u, err := url.Parse(apiURL)
	if err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	wsURL := url.URL{Scheme: scheme, Host: u.Host, Path: "/ws/feed"}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to feed: %w", err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				return
			}
			printFeedMessage(message)
		}
	}()

	color.Cyan("Tailing the live feed (Ctrl+C to stop)...")

	select {
	case <-done:
		return nil
	case <-interrupt:
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		return nil
	}
}

// printFeedMessage handles both the initial snapshot (an array) and single
// live entries.
func printFeedMessage(message []byte) {
	trimmed := strings.TrimSpace(string(message))

	if strings.HasPrefix(trimmed, "[") {
		var entries []ActivityResponse
		if err := json.Unmarshal(message, &entries); err != nil {
			return
		}
		for i := len(entries) - 1; i >= 0; i-- {
			printEntry(entries[i])
		}
		return
	}

	var entry ActivityResponse
	if err := json.Unmarshal(message, &entry); err != nil {
		return
	}
	printEntry(entry)
}

func printEntry(entry ActivityResponse) {
	fmt.Printf("%s %s %s %s\n",
		color.HiBlackString(entry.Timestamp.Format("15:04:05")),
		color.GreenString(entry.User),
		entry.Action,
		color.YellowString(entry.Restaurant))
}
