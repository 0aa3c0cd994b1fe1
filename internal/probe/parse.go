package probe

import (
	"regexp"
	"strconv"
)

// Ping output differs per platform. Each matcher extracts the mean RTT from
// one summary convention; first match wins, no match means no value.
type latencyMatcher struct {
	name string
	re   *regexp.Regexp
}

var latencyMatchers = []latencyMatcher{
	// Windows: "Minimum = 1ms, Maximum = 4ms, Average = 23ms"
	{name: "windows_average", re: regexp.MustCompile(`Average\s*=\s*([0-9]+(?:\.[0-9]+)?)\s*ms`)},
	// Linux/macOS: "rtt min/avg/max/mdev = 1.1/2.2/3.3/0.4 ms"
	{name: "unix_stats", re: regexp.MustCompile(`(?:rtt|round-trip)[^=]*=\s*[0-9.]+/([0-9.]+)/`)},
}

// ParseMeanLatency extracts the mean round-trip time in milliseconds from raw
// ping output. ok=false when no known summary line is present or the value
// does not parse as a number.
func ParseMeanLatency(out string) (float64, bool) {
	for _, m := range latencyMatchers {
		groups := m.re.FindStringSubmatch(out)
		if groups == nil {
			continue
		}
		v, err := strconv.ParseFloat(groups[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
