package domain

import "testing"

func TestClassifyProfile(t *testing.T) {
	cases := []struct {
		label string
		want  Profile
	}{
		{"pješačka", ProfileWalking},
		{"Pješačka staza", ProfileWalking},
		{"planinarska staza", ProfileWalking},
		{"biciklistička", ProfileCycling},
		{"BICIKLISTIČKA", ProfileCycling},
		{"mountain bike", ProfileCycling},
		// both a walking and a cycling marker: cycling must win
		{"biciklistička staza", ProfileCycling},
		{"automobilska", ProfileDriving},
		{"", ProfileDriving},
		{"nešto sasvim drugo", ProfileDriving},
	}

	for _, c := range cases {
		if got := ClassifyProfile(c.label); got != c.want {
			t.Errorf("ClassifyProfile(%q) = %q, want %q", c.label, got, c.want)
		}
	}

	// deterministic: same input, same output
	for i := 0; i < 3; i++ {
		if got := ClassifyProfile("biciklistička staza"); got != ProfileCycling {
			t.Fatalf("ClassifyProfile not deterministic, got %q on run %d", got, i)
		}
	}
}

func TestRouteAlternativeValidate(t *testing.T) {
	valid := RouteAlternative{
		Path: []Coordinate{
			{Lat: 43.85, Lon: 18.41},
			{Lat: 44.55, Lon: 18.10},
		},
		DistanceMeters: 42000,
		Color:          "#ff0000",
		Profile:        ProfileDriving,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := valid
	short.Path = valid.Path[:1]
	if err := short.Validate(); err == nil {
		t.Error("single-point path should be invalid")
	}

	negative := valid
	negative.DistanceMeters = -1
	if err := negative.Validate(); err == nil {
		t.Error("negative distance should be invalid")
	}

	offGlobe := valid
	offGlobe.Path = []Coordinate{{Lat: 91, Lon: 0}, {Lat: 0, Lon: 0}}
	if err := offGlobe.Validate(); err == nil {
		t.Error("latitude 91 should be invalid")
	}
}
