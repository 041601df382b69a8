package app

import (
	"os"
	"runtime"

	"github.com/atotto/clipboard"
)

// Clipboard is the sink an activity URL is copied to after a successful
// verification. A failing write is never fatal to the caller.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the OS clipboard. On Linux this shells out to
// xclip/xsel/wl-copy depending on the session type.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// NopClipboard discards writes. Used in headless environments and tests.
type NopClipboard struct{}

func (NopClipboard) WriteText(string) error {
	return nil
}

// DetectClipboard picks the clipboard implementation for this environment.
// A Linux session without a display has no clipboard utility to talk to, so
// writes are silently dropped instead of erroring on every verification.
func DetectClipboard() Clipboard {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return NopClipboard{}
	}
	return SystemClipboard{}
}
