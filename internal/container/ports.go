package container

import "sort"

// PublishedHostPorts returns the distinct published host ports from bindings
// in ascending order. Bindings without a host port are dropped.
func PublishedHostPorts(bindings []PortBinding) []int {
	seen := make(map[int]bool, len(bindings))
	var ports []int
	for _, b := range bindings {
		if b.Host == 0 || seen[b.Host] {
			continue
		}
		seen[b.Host] = true
		ports = append(ports, b.Host)
	}
	sort.Ints(ports)
	return ports
}
