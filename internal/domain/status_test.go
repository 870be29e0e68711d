package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{"Approved", StatusApproved},
		{" rejected ", StatusRejected},
		{"REJECTED", StatusRejected},
	}
	for _, tc := range cases {
		got, err := NormalizeStatus(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeStatusRejectsUnknownValues(t *testing.T) {
	for _, in := range []string{"", "INVALID", "accepted", "done", "approvedd"} {
		_, err := NormalizeStatus(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, IsValidation(err), "input %q should yield validation error", in)
	}
}
