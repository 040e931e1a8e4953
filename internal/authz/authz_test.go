package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dracula-tv/media-backend/internal/model"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal *model.Principal
		owner     string
		want      bool
	}{
		{name: "owner", principal: &model.Principal{ID: "u1"}, owner: "u1", want: true},
		{name: "other user", principal: &model.Principal{ID: "u1"}, owner: "u2", want: false},
		{name: "nil principal", principal: nil, owner: "u1", want: false},
		{name: "empty principal id", principal: &model.Principal{}, owner: "", want: false},
		{name: "case sensitive", principal: &model.Principal{ID: "U1"}, owner: "u1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.owner))
		})
	}
}
