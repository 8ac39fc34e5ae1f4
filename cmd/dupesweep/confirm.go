package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var errInterrupted = errors.New("interrupted before the sweep started")

const interruptMessage = "Keyboard Interrupt received, stopping script execution"

// confirmRun prints the mode warning and waits out the delay. It returns
// errInterrupted when ctx ends first.
func confirmRun(ctx context.Context, out io.Writer, commit bool, delay time.Duration) error {
	if commit {
		fmt.Fprintln(out, "[!] Warning, you are about to remove files from your system, these files are irrecoverable by this program")
		fmt.Fprintln(out, `[!] If you wish to only view potential removals, run the script again without the "--run" flag`)
	} else {
		fmt.Fprintln(out, "[*] You are running the script in a mode which does not remove files, only prints them to stdout")
		fmt.Fprintln(out, `[*] If you are sure you wish to remove files, run the script again with the "--run" flag`)
	}
	if delay <= 0 {
		return nil
	}

	fmt.Fprintf(out, "[*] Waiting %d seconds before continuing execution, use CTRL+C to stop script\n", int(delay.Round(time.Second)/time.Second))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errInterrupted
	case <-timer.C:
		return nil
	}
}
