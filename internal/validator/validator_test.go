package validator

import (
	"testing"
)

func TestValidateShowDatetime(t *testing.T) {
	v := NewValidator()

	type input struct {
		ShowDatetime string `validate:"show_datetime"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "canonical form", value: "2025-09-01T18:00:00", wantErr: false},
		{name: "midnight", value: "2025-01-01T00:00:00", wantErr: false},
		{name: "timezone suffix", value: "2025-09-01T18:00:00Z", wantErr: true},
		{name: "offset suffix", value: "2025-09-01T18:00:00+02:00", wantErr: true},
		{name: "fractional seconds", value: "2025-09-01T18:00:00.000", wantErr: true},
		{name: "date only", value: "2025-09-01", wantErr: true},
		{name: "space separator", value: "2025-09-01 18:00:00", wantErr: true},
		{name: "missing seconds", value: "2025-09-01T18:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(input{ShowDatetime: tt.value})
			if (err != nil) != tt.wantErr {
				t.Errorf("validation error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSeatStatus(t *testing.T) {
	v := NewValidator()

	type input struct {
		Status string `validate:"seat_status"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "available", value: "AVAILABLE", wantErr: false},
		{name: "broken", value: "BROKEN", wantErr: false},
		{name: "maintenance", value: "MAINTENANCE", wantErr: false},
		{name: "lowercase", value: "available", wantErr: true},
		{name: "unknown", value: "RESERVED", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(input{Status: tt.value})
			if (err != nil) != tt.wantErr {
				t.Errorf("validation error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
