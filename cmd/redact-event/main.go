package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Michael-Hollister/ruma/event"
	"github.com/Michael-Hollister/ruma/version"
)

// This is a utility for applying the redaction algorithm to an event without
// a running server: it reads a full event JSON object from stdin, redacts
// its content against the given room version and prints the result.
//
// Usage: ./redact-event -roomversion=11 < event.json

var roomVersion = flag.String("roomversion", string(version.DefaultRoomVersion()), "the room version to redact against")
var contentOnly = flag.Bool("content", false, "treat stdin as bare event content of the type given by -type")
var eventType = flag.String("type", "", "the event type, only used with -content")

func main() {
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	v := version.RoomVersion(*roomVersion)
	if _, err = version.Description(v); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err, "- using the newest known redaction rules")
	}

	if *contentOnly {
		if *eventType == "" {
			fmt.Println("expecting: redact-event -content -type m.room.member [-roomversion 11] < content.json")
			flag.PrintDefaults()
			os.Exit(1)
		}
		fmt.Println(string(event.RedactJSON(*eventType, input, v)))
		return
	}

	ev, err := event.ParseEvent(input)
	if err != nil {
		panic(err)
	}
	redacted := ev.Redact(v)
	output, err := json.Marshal(redacted)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(output))
}
