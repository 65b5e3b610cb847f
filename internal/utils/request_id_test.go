package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: uuid.NewString(), want: true},
		{id: "sync_42", want: true},
		{id: "", want: false},
		{id: strings.Repeat("a", 65), want: false},
		{id: "with space", want: false},
		{id: "line\nbreak", want: false},
		{id: "ümlaut", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequestID(tt.id), "id %q", tt.id)
	}
}
