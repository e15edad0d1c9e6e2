// SPDX-License-Identifier: MIT

// Command stepviz lists, records and plays algorithm step sequences.
package main

func main() {
	Execute()
}
