package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{name: "relative path", base: "http://api.local:3000", ref: "uploads/photo.jpg", want: "http://api.local:3000/uploads/photo.jpg"},
		{name: "backslash separators normalized", base: "http://api.local:3000", ref: `uploads\items\photo.jpg`, want: "http://api.local:3000/uploads/items/photo.jpg"},
		{name: "absolute url untouched", base: "http://api.local:3000", ref: "https://cdn.example.com/photo.jpg", want: "https://cdn.example.com/photo.jpg"},
		{name: "trailing and leading slashes collapse", base: "http://api.local:3000/", ref: "/uploads/photo.jpg", want: "http://api.local:3000/uploads/photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURL(tt.base, tt.ref))
		})
	}
}

func TestIdentityAuthenticated(t *testing.T) {
	assert.False(t, Identity{ID: "u1"}.Authenticated())
	assert.True(t, Identity{ID: "u1", Token: "tok"}.Authenticated())
}
