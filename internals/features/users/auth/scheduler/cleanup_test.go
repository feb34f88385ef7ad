package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pustakaku_backend/internals/features/users/auth/scheduler"
)

func Test_CleanupInterval(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want time.Duration
	}{
		{"default_24h", "", 24 * time.Hour},
		{"explicit_hours", "6", 6 * time.Hour},
		{"garbage_falls_back", "abc", 24 * time.Hour},
		{"non_positive_falls_back", "0", 24 * time.Hour},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TOKEN_BLACKLIST_CLEANUP_HOURS", tc.env)
			assert.Equal(t, tc.want, scheduler.CleanupInterval())
		})
	}
}
