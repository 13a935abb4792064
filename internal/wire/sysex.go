package wire

// Package wire builds and classifies the Launchpad Pro MK3 SysEx
// messages described in the Novation programmer's manual. Every
// outbound command shares the same envelope: the six byte device
// signature, a payload, and the MIDI end-of-exclusive byte.

// Header is the fixed manufacturer/device signature for the
// Launchpad Pro MK3 (Novation, device 0x0E).
var Header = []byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x0E}

const (
	// EOX terminates every SysEx message.
	EOX byte = 0xF7

	// Payload tags, dispatched on the first byte after the header.
	TagLayout    byte = 0x00
	TagLight     byte = 0x03
	TagLiveState byte = 0x0E
	TagDAWMode   byte = 0x10
	TagScroll    byte = 0x32
)

// Lighting type codes used by the 0x03 lighting command.
const (
	LightStatic   byte = 0x00
	LightFlashing byte = 0x01
	LightPulsing  byte = 0x02
)

// offBrightness is the palette brightness code the firmware treats as
// "off" in the bulk clear command.
const offBrightness byte = 13

// Message frames a payload with the device header and EOX.
func Message(payload ...byte) []byte {
	msg := make([]byte, 0, len(Header)+len(payload)+1)
	msg = append(msg, Header...)
	msg = append(msg, payload...)
	msg = append(msg, EOX)
	return msg
}

// LayoutQuery asks the device to report its current layout. The reply
// arrives asynchronously as a layout report.
func LayoutQuery() []byte {
	return Message(TagLayout)
}

// SetLayout switches the device to the given layout code and page.
func SetLayout(layout, page byte) []byte {
	return Message(TagLayout, layout, page, 0x00)
}

// PadState is the persistent per-pad lighting command: type, pad
// index, palette color.
func PadState(typ, id, color byte) []byte {
	return Message(TagLight, typ, id, color&0x7F)
}

// AllPadsOff clears the whole grid with one message: 31 fixed
// (static, index, off) triplets, independent of tracked pad state.
func AllPadsOff() []byte {
	payload := make([]byte, 0, 1+31*3)
	payload = append(payload, TagLight)
	for n := byte(1); n < 32; n++ {
		payload = append(payload, 0x00, n, offBrightness)
	}
	return Message(payload...)
}

// AllPadsOn lights the whole grid in a single palette color.
func AllPadsOn(color byte) []byte {
	return Message(TagLiveState, color&0x7F)
}

// LiveState returns the device to its firmware-native "live" state.
func LiveState() []byte {
	return Message(TagLiveState, 0x00)
}

// ProgrammerState hands the host full control of pads and lighting.
func ProgrammerState() []byte {
	return Message(TagLiveState, 0x01)
}

// DAWMode enables or disables the DAW-hosted mode.
func DAWMode(enabled bool) []byte {
	if enabled {
		return Message(TagDAWMode, 0x01)
	}
	return Message(TagDAWMode, 0x00)
}

// ScrollText renders scrolling text across the grid. With a nonzero
// speed the firmware expects a second message that reuses the text
// command's leading bytes with the speed byte in the text position, so
// one logical request can produce two wire messages.
func ScrollText(text string, color byte, loop bool, speed float64) [][]byte {
	payload := make([]byte, 0, 3+len(text))
	payload = append(payload, TagScroll, color&0x7F)
	if loop {
		payload = append(payload, 0x01)
	} else {
		payload = append(payload, 0x00)
	}
	for i := 0; i < len(text); i++ {
		payload = append(payload, text[i]&0x7F)
	}
	msgs := [][]byte{Message(payload...)}

	if speed != 0 {
		speedByte := byte(1 + speed*6)
		msgs = append(msgs, Message(TagScroll, color&0x7F, payload[2], speedByte))
	}
	return msgs
}

// Payload extracts the payload of an inbound device SysEx, tolerating
// both framed (leading 0xF0) and pre-stripped data, as MIDI transports
// differ on whether framing bytes are delivered. Returns false if the
// message is too short or carries a foreign signature.
func Payload(raw []byte) ([]byte, bool) {
	if len(raw) > 0 && raw[0] == 0xF0 {
		if len(raw) > 1 && raw[len(raw)-1] == EOX {
			raw = raw[:len(raw)-1]
		}
	} else {
		// Unframed: compare against the signature minus 0xF0.
		if !hasPrefix(raw, Header[1:]) {
			return nil, false
		}
		if len(raw) > 0 && raw[len(raw)-1] == EOX {
			raw = raw[:len(raw)-1]
		}
		return raw[len(Header)-1:], len(raw) > len(Header)-1
	}
	if !hasPrefix(raw, Header) {
		return nil, false
	}
	return raw[len(Header):], len(raw) > len(Header)
}

// LayoutReport parses a layout-report payload (tag 0x00 followed by
// the layout index). Returns false for any other payload.
func LayoutReport(payload []byte) (int, bool) {
	if len(payload) < 2 || payload[0] != TagLayout {
		return 0, false
	}
	return int(payload[1]), true
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
