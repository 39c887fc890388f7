package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalURL(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		address  string
		expected string
	}{
		{
			desc:     "port only",
			address:  ":9000",
			expected: "http://localhost:9000/",
		},
		{
			desc:     "host and port",
			address:  "127.0.0.1:8080",
			expected: "http://127.0.0.1:8080/",
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, localURL(tc.address))
		})
	}
}
