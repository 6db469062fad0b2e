// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/jarrunner/cmd/jarrunner"

func main() {
	cmd.Execute()
}
