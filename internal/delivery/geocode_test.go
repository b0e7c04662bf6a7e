package delivery

import "testing"

func TestHaversineKm(t *testing.T) {
	store := Coordinates{28.6139, 77.2090}

	if got := HaversineKm(store, store); got != 0 {
		t.Fatalf("distance to self = %v, want 0", got)
	}
	// Delhi to Mumbai is roughly 1150 km.
	mumbai := Coordinates{19.0760, 72.8777}
	if got := HaversineKm(store, mumbai); got < 1100 || got > 1200 {
		t.Fatalf("Delhi-Mumbai = %v km, expected around 1150", got)
	}
}

func TestZipcodeResolver(t *testing.T) {
	r := NewZipcodeResolver(Coordinates{28.6139, 77.2090})

	km, ok := r.DistanceKm("110001")
	if !ok {
		t.Fatalf("store zip must resolve")
	}
	if km != 0 {
		t.Fatalf("store zip distance = %v, want 0", km)
	}

	km, ok = r.DistanceKm("110007")
	if !ok {
		t.Fatalf("neighbourhood zip must resolve")
	}
	if km <= 0 || km > DefaultMaxDistanceKm {
		t.Fatalf("110007 should be within the serviceable band, got %v km", km)
	}

	if _, ok := r.DistanceKm("999999"); ok {
		t.Fatalf("unknown zip must not resolve")
	}

	km, ok = r.DistanceKm("400001")
	if !ok || km < 1000 {
		t.Fatalf("Mumbai zip should resolve far out of range, got %v ok=%v", km, ok)
	}
}
