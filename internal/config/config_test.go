package config

import (
	"errors"
	"testing"
)

func TestDefaultServer(t *testing.T) {
	sc := DefaultServer()
	if sc.Host != "localhost" || sc.Port != 8081 {
		t.Fatalf("unexpected default server: %+v", sc)
	}
	if !sc.LogRequests {
		t.Error("single-port variant should log requests")
	}
	if got := sc.URL(); got != "http://localhost:8081" {
		t.Errorf("URL() = %q", got)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDefaultListenerSet(t *testing.T) {
	lc := DefaultListenerSet()
	want := []int{8081, 8082, 8083}
	if len(lc.Ports) != len(want) {
		t.Fatalf("expected %d ports, got %v", len(want), lc.Ports)
	}
	servers := lc.Servers()
	for i, sc := range servers {
		if sc.Port != want[i] {
			t.Errorf("server %d: expected port %d, got %d", i, want[i], sc.Port)
		}
		if sc.Host != DefaultHost {
			t.Errorf("server %d: expected host %q, got %q", i, DefaultHost, sc.Host)
		}
		if sc.LogRequests {
			t.Errorf("server %d: request logging should be suppressed", i)
		}
	}
	if err := lc.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDefaultListenerSetIsACopy(t *testing.T) {
	lc := DefaultListenerSet()
	lc.Ports[0] = 9999
	if ListenerSetPorts[0] != 8081 {
		t.Errorf("mutating a default config leaked into ListenerSetPorts: %v", ListenerSetPorts)
	}
}

func TestAddrIPv6(t *testing.T) {
	sc := ServerConfig{Host: "::1", Port: 8081}
	if got := sc.Addr(); got != "[::1]:8081" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestServerValidate(t *testing.T) {
	tests := []struct {
		name string
		sc   ServerConfig
		want error
	}{
		{"empty host", ServerConfig{Port: 8081}, ErrInvalidHost},
		{"zero port", ServerConfig{Host: "localhost"}, ErrInvalidPort},
		{"port too large", ServerConfig{Host: "localhost", Port: 70000}, ErrInvalidPort},
		{"negative port", ServerConfig{Host: "localhost", Port: -1}, ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sc.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestListenerSetValidate(t *testing.T) {
	if err := (ListenerSetConfig{Host: "localhost"}).Validate(); !errors.Is(err, ErrNoPorts) {
		t.Errorf("expected ErrNoPorts, got %v", err)
	}
	dup := ListenerSetConfig{Host: "localhost", Ports: []int{8081, 8082, 8081}}
	if err := dup.Validate(); !errors.Is(err, ErrDuplicatePort) {
		t.Errorf("expected ErrDuplicatePort, got %v", err)
	}
	bad := ListenerSetConfig{Host: "localhost", Ports: []int{8081, 0}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPort) {
		t.Errorf("expected ErrInvalidPort, got %v", err)
	}
}
