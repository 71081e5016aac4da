// Command slugsh configures a compacting allocator over a fixed address range
// and drives it from an interactive shell.
package main

func main() {
	execute()
}
