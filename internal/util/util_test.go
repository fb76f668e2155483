package util

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestFormatCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "zero", value: 0, expected: "0"},
		{name: "whole degrees", value: 23, expected: "23"},
		{name: "typical latitude", value: 23.7808, expected: "23.7808"},
		{name: "negative longitude", value: -122.4194, expected: "-122.4194"},
		{name: "no scientific notation", value: 0.0000001, expected: "0.0000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCoordinate(tt.value); got != tt.expected {
				t.Fatalf("FormatCoordinate(%v) = %s, want %s", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatLatLng(t *testing.T) {
	t.Parallel()

	point := orb.Point{90.4125, 23.7808}
	if got := FormatLatLng(point); got != "23.7808,90.4125" {
		t.Fatalf("FormatLatLng(%v) = %s, want 23.7808,90.4125", point, got)
	}
}

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	got, err := ParseCoordinate("23.7808")
	if err != nil {
		t.Fatalf("ParseCoordinate returned error: %v", err)
	}
	if got != 23.7808 {
		t.Fatalf("ParseCoordinate = %v, want 23.7808", got)
	}

	if _, err := ParseCoordinate("north"); err == nil {
		t.Fatal("ParseCoordinate accepted a non numeric value")
	}
}
