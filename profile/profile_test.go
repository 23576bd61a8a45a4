package profile

import "testing"

func TestMake(t *testing.T) {
	p := Make(WithMode("cpu"), WithPath("/tmp/x"), WithQuiet(true))

	if p.Mode != "cpu" || p.Path != "/tmp/x" || !p.Quiet {
		t.Errorf("Make() = %+v", p)
	}
}

func TestStartDisabled(t *testing.T) {
	for _, mode := range []string{"", "no-such-mode"} {
		t.Run(mode, func(t *testing.T) {
			s := Make(WithMode(mode)).Start()
			if _, ok := s.(ignore); !ok {
				t.Errorf("Start() = %T, want no-op", s)
			}

			s.Stop()
		})
	}
}
