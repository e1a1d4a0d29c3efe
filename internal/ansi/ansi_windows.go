// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// consoleMode is added to the current mode of every console handle the logger writes to.
// See https://learn.microsoft.com/en-us/windows/console/setconsolemode.
const consoleMode = windows.ENABLE_PROCESSED_OUTPUT |
	windows.ENABLE_WRAP_AT_EOL_OUTPUT |
	windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING

// init turns on escape sequence processing for stdout and stderr, which carries the log output.
func init() {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		_ = enableVirtualTerminal(windows.Handle(f.Fd()))
	}
}

// enableVirtualTerminal leaves the handle untouched when it is not a console, such as a pipe or a file.
func enableVirtualTerminal(h windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	if mode&consoleMode == consoleMode {
		return nil
	}
	return windows.SetConsoleMode(h, mode|consoleMode)
}
