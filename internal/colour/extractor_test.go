package colour

import "testing"

func TestNewExtractor(t *testing.T) {
	e, err := NewExtractor(AlgorithmDominant)
	if err != nil {
		t.Fatalf("NewExtractor(dominant) error = %v", err)
	}
	if _, ok := e.(*DominantExtractor); !ok {
		t.Errorf("NewExtractor(dominant) = %T, want *DominantExtractor", e)
	}

	if _, err := NewExtractor("kmeans"); err == nil {
		t.Error("NewExtractor(kmeans) expected error")
	}
}

func TestIsValidAlgorithm(t *testing.T) {
	if !IsValidAlgorithm(AlgorithmDominant) {
		t.Error("dominant should be valid")
	}
	if IsValidAlgorithm("") {
		t.Error("empty algorithm should be invalid")
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ExtractorConfig
		wantErr bool
	}{
		{"default", DefaultExtractorConfig(), false},
		{"max count", ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: MaxExtractCount}, false},
		{"zero count", ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: 0}, true},
		{"count too large", ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: MaxExtractCount + 1}, true},
		{"unknown algorithm", ExtractorConfig{Algorithm: "median-cut", ColorCount: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
