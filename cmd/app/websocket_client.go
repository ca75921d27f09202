package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
)

// Follows text streams over the API websocket and prints each chunk as it arrives.
func main() {
	host := flag.String("host", "localhost:10000", "API host")
	streamID := flag.String("stream", "", "Only follow this stream")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-host localhost:10000] [-stream <id>] <JWT_TOKEN>")
	}

	target := url.URL{Scheme: "ws", Host: *host, Path: "/api/v1/streams/ws"}
	if *streamID != "" {
		target.RawQuery = url.Values{"stream_id": {*streamID}}.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))
	fmt.Printf("Connecting to %s...\n", target.String())
	conn, _, err := websocket.DefaultDialer.Dial(target.String(), header)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for stream events...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}

			var event dto.TextStreamEvent
			if err := json.Unmarshal(message, &event); err != nil {
				fmt.Printf("%s\n", string(message))
				continue
			}
			switch {
			case event.Chunk != "":
				fmt.Print(event.Chunk)
			case event.Error != "":
				fmt.Printf("\n[%s] %s: %s\n", event.StreamID, event.Status, event.Error)
			default:
				fmt.Printf("\n[%s] %s\n", event.StreamID, event.Status)
			}
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
