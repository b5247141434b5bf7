package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// getRuntime is swapped out in tests to exercise each platform branch.
var getRuntime = func() string { return runtime.GOOS }

// OpenBrowser opens the default system browser at the given URL. The TUI
// uses it to jump from a playlist row to its YouTube or Spotify search
// page. Supports macOS, Linux, and Windows; the launch is fire-and-forget.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	rt := getRuntime()
	switch rt {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", rt)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
