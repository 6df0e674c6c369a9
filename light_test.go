package lumen

import "testing"

func TestLightLayerAddRemove(t *testing.T) {
	ll := NewLightLayer()
	a := NewPointLight(Vec2{X: 10, Y: 10}, 32, 1.5, ColorWhite)
	b := NewPointLight(Vec2{X: 50, Y: 50}, 16, 1.0, Color{1, 0.8, 0.4, 1})
	ll.Add(a)
	ll.Add(b)
	if len(ll.Lights()) != 2 {
		t.Fatalf("lights = %d, want 2", len(ll.Lights()))
	}

	ll.Remove(a)
	if len(ll.Lights()) != 1 || ll.Lights()[0] != b {
		t.Error("Remove must detach exactly the given light")
	}
	ll.Remove(a) // absent: no-op
}

func TestPointLightDefaults(t *testing.T) {
	l := NewPointLight(Vec2{X: 1, Y: 2}, 24, 1.2, ColorWhite)
	if !l.Enabled {
		t.Error("new lights start enabled")
	}
	assertNear(t, "luminosity", l.Luminosity, 1.2)
}

func TestPointLightFlickerWanders(t *testing.T) {
	l := NewPointLight(Vec2{}, 24, 1.0, ColorWhite)
	l.Flicker = 0.5

	ll := NewLightLayer()
	ll.Add(l)

	changed := false
	for n := 0; n < 120; n++ {
		ll.OnFixedTick()
		if l.Luminosity != 1.0 {
			changed = true
		}
		if l.Luminosity < 0.49 || l.Luminosity > 1.51 {
			t.Fatalf("luminosity = %v, outside flicker band", l.Luminosity)
		}
	}
	if !changed {
		t.Error("flicker never moved the luminosity")
	}
}

func TestPointLightNoFlickerIsStable(t *testing.T) {
	l := NewPointLight(Vec2{}, 24, 1.0, ColorWhite)
	ll := NewLightLayer()
	ll.Add(l)

	for n := 0; n < 60; n++ {
		ll.OnFixedTick()
	}
	assertNear(t, "luminosity", l.Luminosity, 1.0)
}

func TestDisabledLightSkipsFlicker(t *testing.T) {
	l := NewPointLight(Vec2{}, 24, 1.0, ColorWhite)
	l.Flicker = 0.5
	l.Enabled = false
	ll := NewLightLayer()
	ll.Add(l)

	for n := 0; n < 60; n++ {
		ll.OnFixedTick()
	}
	assertNear(t, "luminosity", l.Luminosity, 1.0)
}
