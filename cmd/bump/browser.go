package main

import (
	"os"
	"os/exec"
	"runtime"
)

// openBrowser opens a URL in the default browser.
func openBrowser(url string) error {
	var cmd string
	args := []string{url}

	switch {
	case isWSL():
		cmd = "wslview"
	case runtime.GOOS == "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}

	return exec.Command(cmd, args...).Run()
}

func isWSL() bool {
	_, err := os.Stat("/proc/sys/fs/binfmt_misc/WSLInterop")
	return err == nil
}
