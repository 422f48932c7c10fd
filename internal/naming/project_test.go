package naming

import "testing"

func TestNormalizeProject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"six digits", "C123456", "C123456", false},
		{"three digits", "C999", "C999", false},
		{"lowercase normalized", "c123456", "C123456", false},
		{"surrounding spaces", "  C123456 ", "C123456", false},
		{"too few digits", "C12", "", true},
		{"too many digits", "C1234567", "", true},
		{"no letter", "123456", "", true},
		{"two letters", "CC1234", "", true},
		{"trailing letter", "C1234X", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProject(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeProject(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeProject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"normal", ModeNormal, false},
		{"position", ModePosition, false},
		{"pa_mat", ModePAMat, false},
		{"PA_MAT", ModePAMat, false},
		{" normal ", ModeNormal, false},
		{"sequence", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
