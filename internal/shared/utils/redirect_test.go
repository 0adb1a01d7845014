package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRedirectTarget(t *testing.T) {
	req := httptest.NewRequest("GET", "http://tracker.example/", nil)

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"empty falls back", "", "/"},
		{"relative path honored", "/3/", "/3/"},
		{"relative with query honored", "/user/edit/?x=1", "/user/edit/?x=1"},
		{"same host absolute honored", "http://tracker.example/3/", "http://tracker.example/3/"},
		{"other host rejected", "http://evil.example/", "/"},
		{"protocol-relative rejected", "//evil.example/", "/"},
		{"backslash protocol-relative rejected", `/\evil.example`, "/"},
		{"escaped protocol-relative rejected", `/\/evil.example`, "/"},
		{"backslash anywhere rejected", `/3/\evil.example`, "/"},
		{"non-http scheme rejected", "javascript:alert(1)", "/"},
		{"ftp scheme rejected", "ftp://tracker.example/", "/"},
		{"bare word rejected", "evil", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeRedirectTarget(tt.target, req, "/"))
		})
	}
}
