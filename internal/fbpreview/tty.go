package fbpreview

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// setGraphicsMode switches the active console to graphics mode so the
// hardware cursor does not blink over the preview.
func setGraphicsMode() error { return setConsoleMode(kdGraphics, "KD_GRAPHICS") }

// restoreTextMode returns the console to text mode so the cursor and
// normal console come back.
func restoreTextMode() error { return setConsoleMode(kdText, "KD_TEXT") }

func setConsoleMode(mode int, name string) error {
	// Prefer /dev/tty (active VT), fallback to /dev/tty0.
	paths := []string{"/dev/tty", "/dev/tty0"}
	var lastErr error
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%s failed: unknown error", name)
}

// hideCursor writes the ANSI escape to hide the cursor to the active VT.
func hideCursor() error { return writeVT("\x1b[?25l") }
func showCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	paths := []string{"/dev/tty", "/dev/tty0"}
	var lastErr error
	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %w", lastErr)
	}
	return fmt.Errorf("write VT failed: unknown error")
}
