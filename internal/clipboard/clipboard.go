// Package clipboard copies text to the system clipboard through the
// platform's clipboard command.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable means no clipboard command was found.
var ErrUnavailable = errors.New("no clipboard command found")

// candidates lists clipboard commands per platform, in preference order.
var candidates = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"windows": {{"clip"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

// Command picks the clipboard command for goos. lookPath reports whether a
// program exists, as exec.LookPath does.
func Command(goos string, lookPath func(string) (string, error)) ([]string, error) {
	list, ok := candidates[goos]
	if !ok {
		list = candidates["linux"]
	}
	for _, argv := range list {
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrUnavailable
}

// Write copies text to the system clipboard.
func Write(text string) error {
	argv, err := Command(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, err := Command(runtime.GOOS, exec.LookPath)
	return err == nil
}
