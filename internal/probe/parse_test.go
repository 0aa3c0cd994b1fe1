package probe

import "testing"

func TestParseMeanLatency_WindowsAverage(t *testing.T) {
	out := `Ping statistics for 93.184.216.34:
    Packets: Sent = 4, Received = 4, Lost = 0 (0% loss),
Approximate round trip times in milli-seconds:
    Minimum = 21ms, Maximum = 27ms, Average = 23ms`
	ms, ok := ParseMeanLatency(out)
	if !ok {
		t.Fatalf("want ok, got false")
	}
	if ms != 23.0 {
		t.Fatalf("want 23.0, got %v", ms)
	}
}

func TestParseMeanLatency_UnixStats(t *testing.T) {
	out := `4 packets transmitted, 4 received, 0% packet loss, time 3004ms
rtt min/avg/max/mdev = 1.1/2.2/3.3/0.4 ms`
	ms, ok := ParseMeanLatency(out)
	if !ok {
		t.Fatalf("want ok, got false")
	}
	if ms != 2.2 {
		t.Fatalf("want 2.2, got %v", ms)
	}
}

func TestParseMeanLatency_MacOSRoundTrip(t *testing.T) {
	out := `round-trip min/avg/max/stddev = 12.345/15.678/19.012/2.3 ms`
	ms, ok := ParseMeanLatency(out)
	if !ok || ms != 15.678 {
		t.Fatalf("want 15.678/true, got %v/%v", ms, ok)
	}
}

func TestParseMeanLatency_NoMatch(t *testing.T) {
	cases := []string{
		"",
		"ping: unknown host nosuchhost.invalid",
		"4 packets transmitted, 0 received, 100% packet loss",
	}
	for _, c := range cases {
		if ms, ok := ParseMeanLatency(c); ok {
			t.Fatalf("input %q: want no value, got %v", c, ms)
		}
	}
}
