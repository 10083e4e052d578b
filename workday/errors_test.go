package workday_test

import (
	"fmt"
	"testing"

	"github.com/warp/workday-engine/workday"
)

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		client   bool
		notFound bool
	}{
		{"invalid date", workday.ErrInvalidDate, true, false},
		{"not configured", workday.ErrNotConfigured, true, false},
		{"wrapped invalid date", fmt.Errorf("parse: %w", workday.ErrInvalidDate), true, false},
		{"preset not found", workday.ErrPresetNotFound, false, true},
		{"store failure", workday.ErrStoreFailed, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := workday.IsClientError(tc.err); got != tc.client {
				t.Errorf("IsClientError = %v, want %v", got, tc.client)
			}
			if got := workday.IsNotFound(tc.err); got != tc.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tc.notFound)
			}
		})
	}
}
