// dmesg prints the kernel message ring buffer. Must be run as root.
package main

import (
	"fmt"
	"os"

	"github.com/jnesss/darwinproc/kmesg"
)

func main() {
	if !kmesg.Root() {
		fmt.Fprintln(os.Stderr, "Must be run as root")
		os.Exit(1)
	}

	buf, err := kmesg.Buffer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(buf)
}
