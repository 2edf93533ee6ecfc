package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIP(t *testing.T) {
	valid := []string{"197501012019031001", "199407152025211002"}
	invalid := []string{"19750101201903100", "1975010120190310011", "19750101201903100a", ""}
	for _, s := range valid {
		if !IsValidNIP(s) {
			t.Errorf("IsValidNIP(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidNIP(s) {
			t.Errorf("IsValidNIP(%q) = true, want false", s)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(-6.2) || !IsValidLatitude(90) || !IsValidLatitude(-90) {
		t.Error("valid latitudes rejected")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("invalid latitudes accepted")
	}
	if !IsValidLongitude(106.8) || !IsValidLongitude(180) || !IsValidLongitude(-180) {
		t.Error("valid longitudes rejected")
	}
	if IsValidLongitude(180.1) || IsValidLongitude(-181) {
		t.Error("invalid longitudes accepted")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "approved", "rejected"}
	if !IsInSlice("pending", slice) {
		t.Error("IsInSlice missed present value")
	}
	if IsInSlice("cancelled", slice) {
		t.Error("IsInSlice found absent value")
	}
}
