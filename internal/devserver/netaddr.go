package devserver

import (
	"net"
)

// fallbackIP is reported when no outbound route exists.
const fallbackIP = "127.0.0.1"

// LocalIP returns the machine's outward-facing IP address. It opens a UDP
// socket towards a public resolver, which selects the right local interface
// without sending a single packet, and reads the chosen source address back.
// Returns "127.0.0.1" when the machine has no route out.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return fallbackIP
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return fallbackIP
	}
	return addr.IP.String()
}
