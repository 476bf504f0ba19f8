package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Counters(t *testing.T) {
	s := NewStats()

	for i := 0; i < 5; i++ {
		s.RecordObject()
	}
	s.RecordMatch()
	s.RecordMatch()

	assert.EqualValues(t, 5, s.Total())
	assert.EqualValues(t, 2, s.Matched())
}

func TestStats_Summary(t *testing.T) {
	s := NewStats()
	s.RecordObject()
	s.RecordMatch()

	summary := s.Summary()
	assert.Contains(t, summary, "Total objects:   1")
	assert.Contains(t, summary, "Matched objects: 1 (100.0%)")
}
