package toolutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
)

// Content types used for payload rendering.
const (
	CTJSON = "application/json"
	CTCBOR = "application/cbor"
	CTText = "text/plain"
)

// EmptyPayloadMarker is printed in place of a zero-length payload.
const EmptyPayloadMarker = "<empty>"

// KV is a single key-value item of a message section.
type KV struct {
	Key   string
	Value any
}

// MessageSection groups related key-value items under a title.
type MessageSection struct {
	Title string
	Items []KV
}

// GuessMIME classifies a payload body by inspection. JSON is recognized by
// its leading token, CBOR by the major type of the first byte. Anything else,
// including an empty body, is treated as plain text.
func GuessMIME(body []byte) string {
	if len(body) == 0 {
		return CTText
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return CTJSON
	}
	// CBOR major types: byte string, text string, array, map, or tag.
	switch b := body[0]; {
	case b >= 0x40 && b <= 0x5f, // byte string
		b >= 0x60 && b <= 0x7f, // text string
		b >= 0x80 && b <= 0x9f, // array
		b >= 0xa0 && b <= 0xbf, // map
		b >= 0xc0 && b <= 0xdb: // tag
		return CTCBOR
	}
	return CTText
}

// PrettyBodyByMIME renders a payload body for terminal display. JSON and CBOR
// bodies are decoded and colorized; bodies that fail to decode are returned
// as-is, and an empty body yields an empty result.
func PrettyBodyByMIME(mime string, body []byte) []byte {
	if len(body) == 0 {
		return nil
	}

	switch mime {
	case CTJSON:
		var obj any
		if err := json.Unmarshal(body, &obj); err != nil {
			return body
		}
		return colorize(obj, body)
	case CTCBOR:
		var obj any
		if err := cbor.Unmarshal(body, &obj); err != nil {
			return body
		}
		out, err := colorjson.Marshal(obj)
		if err != nil {
			// CBOR maps decode with non-string keys colorjson cannot render.
			return nil
		}
		return out
	default:
		return body
	}
}

func colorize(obj any, fallback []byte) []byte {
	f := colorjson.NewFormatter()
	f.Indent = 2
	out, err := f.Marshal(obj)
	if err != nil {
		return fallback
	}
	return out
}

// PrintColoredMessage prints one message block: a title, the given sections as
// key-value lines, and the payload rendered according to its content type.
func PrintColoredMessage(title string, sections []MessageSection, body []byte, contentType string) {
	color.New(color.FgMagenta, color.Bold).Printf("── %s ──\n", title)
	for _, section := range sections {
		if section.Title != "" {
			infoColor.Printf("%s\n", section.Title)
		}
		for _, item := range section.Items {
			PrintKeyValue(item.Key, item.Value)
		}
	}

	keyColor.Printf("  Payload: ")
	if len(body) == 0 {
		fmt.Println(EmptyPayloadMarker)
	} else if pretty := PrettyBodyByMIME(contentType, body); len(pretty) > 0 {
		fmt.Printf("%s\n", pretty)
	} else {
		fmt.Printf("%s\n", body)
	}
	fmt.Println()
}
