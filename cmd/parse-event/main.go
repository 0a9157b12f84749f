package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Michael-Hollister/ruma/event"
)

// This is a utility for checking how an event decodes: it reads a full event
// JSON object from stdin, reports which concrete content shape the
// discriminator selected, then re-encodes the typed content to stdout so
// that lossless passthrough can be eyeballed.
//
// Usage: ./parse-event [-mscs msc1767,msc3917] < event.json

var mscs = flag.String("mscs", "msc1767", "comma-separated list of MSCs to enable when decoding")

func main() {
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	ev, err := event.ParseEvent(input)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse event envelope")
	}

	decoder := event.Decoder{}
	if *mscs != "" {
		decoder.Features = event.FeatureSet{MSCs: strings.Split(*mscs, ",")}
	}
	content, err := decoder.DecodeContent(ev)
	if err != nil {
		logrus.WithError(err).WithField("type", ev.Type).Fatal("Failed to decode event content")
	}

	fields := logrus.Fields{
		"type":  content.EventType(),
		"shape": fmt.Sprintf("%T", content),
	}
	if rm, ok := content.(*event.RoomMessageContent); ok {
		fields["msgtype"] = rm.Message.MsgType()
		fields["shape"] = fmt.Sprintf("%T", rm.Message)
	}
	logrus.WithFields(fields).Info("Decoded event content")

	output, err := event.MarshalContent(content)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to re-encode event content")
	}
	fmt.Println(string(output))
}
