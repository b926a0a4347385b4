package mixer

import (
	"fmt"

	"github.com/rsimai/xtouch-mini/internal/control"
)

// XR18 OSC addresses for the three supported functions on the three
// addressable entities. Channel numbers are zero-padded to two digits.

func faderAddress(t control.Target) string {
	switch t.Kind {
	case control.TargetMaster:
		return "/lr/mix/fader"
	case control.TargetAux:
		return "/rtn/aux/mix/fader"
	default:
		return fmt.Sprintf("/ch/%02d/mix/fader", t.Channel)
	}
}

func muteAddress(t control.Target) string {
	switch t.Kind {
	case control.TargetMaster:
		return "/lr/mix/on"
	case control.TargetAux:
		return "/rtn/aux/mix/on"
	default:
		return fmt.Sprintf("/ch/%02d/mix/on", t.Channel)
	}
}

func soloAddress(t control.Target) string {
	switch t.Kind {
	case control.TargetMaster:
		return "/-stat/solosw/lr"
	case control.TargetAux:
		return "/rtn/aux/mix/solo"
	default:
		return fmt.Sprintf("/-stat/solosw/%02d", t.Channel)
	}
}
