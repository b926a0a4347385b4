package mixer

import (
	"fmt"

	"github.com/hypebeast/go-osc/osc"

	"github.com/rsimai/xtouch-mini/internal/control"
)

// Client sends control commands to a Behringer XR18 over OSC/UDP. It
// implements the engine's Output interface and owns the mixer's addressing
// scheme and value encoding.
type Client struct {
	osc *osc.Client
}

// NewClient creates a client for the mixer at host:port. No connection is
// established; OSC over UDP is fire-and-forget.
func NewClient(host string, port int) *Client {
	return &Client{osc: osc.NewClient(host, port)}
}

// EnableRemote sends /xremote so the mixer accepts remote control.
func (c *Client) EnableRemote() error {
	return c.osc.Send(osc.NewMessage("/xremote"))
}

// SetVolume sets the fader of the target to a level in [0.0, 1.0].
func (c *Client) SetVolume(target control.Target, level float64) error {
	msg := osc.NewMessage(faderAddress(target))
	msg.Append(float32(level))
	if err := c.osc.Send(msg); err != nil {
		return fmt.Errorf("sending %s: %w", msg.Address, err)
	}
	return nil
}

// SetToggle sets the mute or solo state of the target.
func (c *Client) SetToggle(target control.Target, typ control.Type, on bool) error {
	address, value, err := toggleMessage(target, typ, on)
	if err != nil {
		return err
	}
	msg := osc.NewMessage(address)
	msg.Append(value)
	if err := c.osc.Send(msg); err != nil {
		return fmt.Errorf("sending %s: %w", address, err)
	}
	return nil
}

// toggleMessage encodes a toggle command for the wire. The XR18 mute address
// is a channel-on switch, so mute is inverted: muted sends 0, unmuted 1.
// Solo is direct: on sends 1.
func toggleMessage(target control.Target, typ control.Type, on bool) (string, int32, error) {
	switch typ {
	case control.TypeMute:
		if on {
			return muteAddress(target), 0, nil
		}
		return muteAddress(target), 1, nil
	case control.TypeSolo:
		if on {
			return soloAddress(target), 1, nil
		}
		return soloAddress(target), 0, nil
	}
	return "", 0, fmt.Errorf("control type %q has no toggle address", typ)
}
