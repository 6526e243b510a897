package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 10 {
		t.Fatalf("after first update: %+v", s)
	}

	s.Update(2, 0, 0)
	if s.AveragePopulation != 90 {
		t.Fatalf("AveragePopulation = %v, want 90", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("zero duration changed the rate to %v", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
}
