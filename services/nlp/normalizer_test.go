package nlp

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"question with stopwords", "What's the temperature in Berlin?", []string{"temperatur", "berlin"}},
		{"suffix stripping", "Is it raining or snowing", []string{"it", "rain", "snow"}},
		{"only stopwords", "please tell me", []string{}},
		{"empty input", "", []string{}},
		{"punctuation and digits ignored", "wind @ 12 km/h!!", []string{"wind", "km", "h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	in := "Will it rain tomorrow morning in New York?"
	first := Normalize(in)
	second := Normalize(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize not deterministic: %v vs %v", first, second)
	}
}

func TestFeatureSetDedupes(t *testing.T) {
	got := FeatureSet([]string{"rain", "berlin", "rain", "rain"})
	want := []string{"rain", "berlin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureSet = %v, want %v", got, want)
	}
}
