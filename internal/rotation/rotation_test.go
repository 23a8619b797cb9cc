package rotation

import "testing"

func TestUpdate_ClampsOffset(t *testing.T) {
	c := DefaultConfig()
	s := c.Begin(State{})

	s = c.Update(s, 100)
	if s.Offset != 50 {
		t.Errorf("Offset after dx=100 = %v, want 50", s.Offset)
	}
	s = c.Update(s, 1000)
	if s.Offset != 180 {
		t.Errorf("Offset after dx=1000 = %v, want 180", s.Offset)
	}
	s = c.Update(s, -1000)
	if s.Offset != -180 {
		t.Errorf("Offset after dx=-1000 = %v, want -180", s.Offset)
	}
}

func TestUpdate_IgnoredWhenIdle(t *testing.T) {
	c := DefaultConfig()
	s := c.Update(State{}, 100)
	if s.Offset != 0 || s.Phase != Idle {
		t.Errorf("Update while idle changed state: %+v", s)
	}
}

func TestRelease(t *testing.T) {
	c := DefaultConfig()

	tests := []struct {
		name       string
		dx         float64
		wantOffset float64
		wantDir    Direction
	}{
		{"snaps down", 40, 30, NoPage},
		{"snaps up", 50, 30, NoPage},
		{"snaps to zero", 20, 0, NoPage},
		{"just below threshold", 140, 60, NoPage},
		{"pages backward", 170, 0, Backward},
		{"pages forward", -180, 0, Forward},
		{"far drag pages once", -2000, 0, Forward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := c.Begin(State{})
			s = c.Update(s, tt.dx)
			s = c.Release(s)
			if s.Phase != Settling {
				t.Fatalf("phase after Release = %v, want settling", s.Phase)
			}
			s, dir := c.Settle(s)
			if s.Phase != Idle {
				t.Errorf("phase after Settle = %v, want idle", s.Phase)
			}
			if s.Offset != tt.wantOffset {
				t.Errorf("offset = %v, want %v", s.Offset, tt.wantOffset)
			}
			if dir != tt.wantDir {
				t.Errorf("direction = %v, want %v", dir, tt.wantDir)
			}

			_, again := c.Settle(s)
			if again != NoPage {
				t.Error("Settle emitted a second page event")
			}
		})
	}
}

func TestRelease_FromNonZeroBase(t *testing.T) {
	c := DefaultConfig()
	s := State{Offset: 60}
	s = c.Begin(s)
	s = c.Update(s, 40) // 60 + 20
	s, dir := c.Settle(c.Release(s))
	if dir != Backward || s.Offset != 0 {
		t.Errorf("offset=%v dir=%v, want 0 and backward", s.Offset, dir)
	}
}

func TestCancel_RestoresBase(t *testing.T) {
	c := DefaultConfig()
	s := c.Begin(State{Offset: 30})
	s = c.Update(s, -200)
	s = c.Cancel(s)
	if s.Phase != Idle || s.Offset != 30 {
		t.Errorf("after Cancel = %+v, want idle at 30", s)
	}
}

func TestController_FiresOnPage(t *testing.T) {
	var pages []Direction
	ctrl := NewController(func(d Direction) { pages = append(pages, d) })

	ctrl.Start()
	ctrl.Move(-200)
	if got := ctrl.End(); got != Forward {
		t.Errorf("End() = %v, want Forward", got)
	}

	ctrl.Start()
	ctrl.Move(30)
	if got := ctrl.End(); got != NoPage {
		t.Errorf("End() = %v, want NoPage", got)
	}
	if ctrl.Offset() != 30 {
		t.Errorf("Offset() = %v, want 30", ctrl.Offset())
	}

	if len(pages) != 1 || pages[0] != Forward {
		t.Errorf("OnPage calls = %v, want [Forward]", pages)
	}
}
