package booking

import (
	"os"
	"path/filepath"
	"testing"
)

const validDoc = `{
  "firstName": "Sara",
  "date": "2025-03-20",
  "timeSlot": "7:30 PM",
  "CapacityCovers": 4,
  "tableName": ["1", "2"],
  "bookingType": "Walk-in",
  "reservationTag": ["VIP"],
  "bookingStatus": "Confirmed"
}`

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{"valid", validDoc, ""},
		{"too many guests", `{"firstName":"Sara","date":"2025-03-20","timeSlot":"7:30 PM","CapacityCovers":25,"bookingStatus":"Confirmed"}`, "/CapacityCovers"},
		{"24-hour slot", `{"firstName":"Sara","date":"2025-03-20","timeSlot":"19:30","CapacityCovers":2,"bookingStatus":"Confirmed"}`, "/timeSlot"},
		{"unknown status", `{"firstName":"Sara","date":"2025-03-20","timeSlot":"7:30 PM","CapacityCovers":2,"bookingStatus":"Maybe"}`, "/bookingStatus"},
		{"repeated tag", `{"firstName":"Sara","date":"2025-03-20","timeSlot":"7:30 PM","CapacityCovers":2,"bookingStatus":"Confirmed","reservationTag":["VIP","VIP"]}`, "/reservationTag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := ValidateJSON([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ValidateJSON: %v", err)
			}
			if tt.wantPath == "" {
				if len(issues) != 0 {
					t.Errorf("issues = %v, want none", issues)
				}
				return
			}
			found := false
			for _, is := range issues {
				if is.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("issues = %v, want one at %s", issues, tt.wantPath)
			}
		})
	}
}

func TestValidateJSONMissingRequired(t *testing.T) {
	issues, err := ValidateJSON([]byte(`{"firstName":"Sara"}`))
	if err != nil {
		t.Fatalf("ValidateJSON: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected issues for missing fields")
	}
}

func TestValidateJSONMalformed(t *testing.T) {
	if _, err := ValidateJSON([]byte(`{"firstName":`)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.json")
	if err := os.WriteFile(path, []byte(validDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	issues, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
