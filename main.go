// SPDX-License-Identifier: GPL-3.0-only
package main

import "github.com/basalt-tools/peek/cmd"

func main() {
	cmd.Execute()
}
