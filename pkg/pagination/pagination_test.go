package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{name: "defaults", in: Params{}, want: Params{Skip: 0, Limit: DefaultLimit}},
		{name: "negative skip", in: Params{Skip: -5, Limit: 10}, want: Params{Skip: 0, Limit: 10}},
		{name: "limit above max", in: Params{Skip: 20, Limit: 5000}, want: Params{Skip: 20, Limit: MaxLimit}},
		{name: "within range", in: Params{Skip: 40, Limit: 25}, want: Params{Skip: 40, Limit: 25}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("%s: Normalize(%+v) = %+v, want %+v", tt.name, tt.in, got, tt.want)
		}
	}
}
