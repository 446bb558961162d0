// procinfo prints what the kernel knows about a process: library
// version, executable path, name, the region file at address 0, and a
// walk of every process on the host with its TCP sockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jnesss/darwinproc/libproc"
)

var walkAll = flag.Bool("all", false, "walk every process and print names and TCP sockets")

func main() {
	flag.Parse()

	pid := int32(os.Getpid())
	if flag.NArg() > 0 {
		parsed, err := strconv.ParseInt(flag.Arg(0), 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid pid %q: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		pid = int32(parsed)
	}

	if major, minor, err := libproc.LibVersion(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Printf("Libversion: %d.%d\n", major, minor)
	}

	fmt.Printf("Pid: %d\n", pid)

	if path, err := libproc.PidPath(pid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Printf("Path: %s\n", path)
	}

	if name, err := libproc.Name(pid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Printf("Name: %s\n", name)
	}

	if region, err := libproc.RegionFileName(pid, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Printf("Region Filename (at address 0): %s\n", region)
	}

	if *walkAll {
		walkProcesses()
	}
}

// walkProcesses lists every pid on the host, printing its name and
// any TCP socket endpoints. A process exiting mid-walk is an ordinary
// query failure and just gets skipped.
func walkProcesses() {
	pids, err := libproc.ListPIDs(libproc.ProcAllPIDs, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("There are currently %d processes active\n", len(pids))

	for _, pid := range pids {
		pid := int32(pid)

		name, err := libproc.Name(pid)
		if err != nil {
			continue
		}
		fmt.Printf("pid: %d, name: %s\n", pid, name)

		fds, err := libproc.ListFDs(pid, 4000)
		if err != nil {
			continue
		}
		for _, fd := range fds {
			if fd.Type != libproc.FDTypeSocket {
				continue
			}
			sock, err := libproc.PidFDInfo[libproc.SocketFDInfo](pid, fd.FD)
			if err != nil {
				continue
			}
			if tcp, ok := sock.Socket.TCP(); ok {
				fmt.Printf("  fd %d: %s:%d (%s)\n",
					fd.FD, tcp.In.LocalIPv4(), tcp.In.LocalPort(), tcp.State)
			}
		}
	}
}
