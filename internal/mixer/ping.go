package mixer

import (
	"os/exec"
	"runtime"
)

// Reachable checks whether the mixer answers a single ping within two
// seconds. The check shells out to the system ping so it needs no raw-socket
// privileges.
func Reachable(host string) bool {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("ping", "-n", "1", "-w", "2000", host)
	default:
		cmd = exec.Command("ping", "-c", "1", "-W", "2", host)
	}
	return cmd.Run() == nil
}
