package atom

import "testing"

func TestElementTable(t *testing.T) {
	all := Elements()
	if len(all) != MaxAtomicNumber {
		t.Fatalf("catalogue has %d elements, expected %d", len(all), MaxAtomicNumber)
	}

	seenSym := make(map[string]bool)
	for i, e := range all {
		if e.Number != i+1 {
			t.Errorf("entry %d has atomic number %d", i, e.Number)
		}
		if e.Name == "" || e.Symbol == "" {
			t.Errorf("element %d is missing a name or symbol", e.Number)
		}
		if seenSym[e.Symbol] {
			t.Errorf("duplicate symbol %q", e.Symbol)
		}
		seenSym[e.Symbol] = true
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		n      int
		name   string
		wantOK bool
	}{
		{1, "Hydrogen", true},
		{11, "Sodium", true},
		{13, "Aluminum", true},
		{118, "Oganesson", true},
		{0, "", false},
		{119, "", false},
		{-1, "", false},
	}

	for _, tc := range tests {
		e, ok := Lookup(tc.n)
		if ok != tc.wantOK || e.Name != tc.name {
			t.Errorf("Lookup(%d) = %+v, %v; expected %q, %v", tc.n, e, ok, tc.name, tc.wantOK)
		}
		if Name(tc.n) != tc.name {
			t.Errorf("Name(%d) = %q", tc.n, Name(tc.n))
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"11", 11, false},
		{"na", 11, false},
		{"Na", 11, false},
		{"sodium", 11, false},
		{" Og ", 118, false},
		{"0", 0, true},
		{"119", 0, true},
		{"", 0, true},
		{"kryptonite", 0, true},
	}

	for _, tc := range tests {
		e, err := Find(tc.ref)
		if (err != nil) != tc.wantErr {
			t.Errorf("Find(%q) error = %v, wantErr %v", tc.ref, err, tc.wantErr)
			continue
		}
		if err == nil && e.Number != tc.want {
			t.Errorf("Find(%q) = %d, expected %d", tc.ref, e.Number, tc.want)
		}
	}
}

func TestFromNumber(t *testing.T) {
	s := FromNumber(11)
	if s.Err || s.Name != "Sodium" || s.ElectronCount != 11 {
		t.Errorf("FromNumber(11) = %+v", s)
	}

	zero := FromNumber(0)
	if !zero.Err || zero.Name != LabelUnknown || zero.ElectronCount != 0 {
		t.Errorf("FromNumber(0) = %+v, expected unknown error state", zero)
	}
	if len(zero.Shells()) != 0 {
		t.Error("zero electrons should draw no shells")
	}
	if _, ok := zero.Element(); ok {
		t.Error("error state should not resolve to an element")
	}

	inv := Invalid()
	if !inv.Err || inv.ElectronCount != 0 || inv.Name != LabelInvalid {
		t.Errorf("Invalid() = %+v", inv)
	}

	if d := Default(); d.Name != "Hydrogen" || d.ElectronCount != 1 {
		t.Errorf("Default() = %+v", d)
	}
}
