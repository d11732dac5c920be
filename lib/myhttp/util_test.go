package myhttp

import (
	"crypto/tls"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostnameWithScheme(t *testing.T) {
	testCases := []struct {
		name     string
		tls      bool
		proto    string
		expected string
	}{
		{name: "Plain http", expected: "http://localhost:8080"},
		{name: "Direct tls", tls: true, expected: "https://localhost:8080"},
		{name: "Tls terminated at proxy", proto: "https", expected: "https://localhost:8080"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := http.NewRequest(http.MethodGet, "/pricing", nil)
			assert.NoError(t, err)
			request.Host = "localhost:8080"
			if tc.tls {
				request.TLS = &tls.ConnectionState{}
			}
			if tc.proto != "" {
				request.Header.Set("X-Forwarded-Proto", tc.proto)
			}

			assert.Equal(t, tc.expected, HostnameWithScheme(request))
		})
	}
}
