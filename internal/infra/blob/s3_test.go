package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned url with extension",
			url:  "https://cdn.example.com/upload/v1724900000/masblog/assets/aa11.png",
			want: "masblog/assets/aa11",
		},
		{
			name: "no version segment",
			url:  "https://cdn.example.com/upload/masblog/assets/aa11.webp",
			want: "masblog/assets/aa11",
		},
		{
			name: "no extension",
			url:  "https://cdn.example.com/upload/v1/masblog/assets/aa11",
			want: "masblog/assets/aa11",
		},
		{
			name: "missing upload marker",
			url:  "https://cdn.example.com/images/aa11.png",
			want: "",
		},
		{
			name: "upload marker with nothing after it",
			url:  "https://cdn.example.com/upload/",
			want: "",
		},
		{
			name: "only a version segment",
			url:  "https://cdn.example.com/upload/v1724900000",
			want: "",
		},
		{
			name: "empty input",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.url))
		})
	}
}
