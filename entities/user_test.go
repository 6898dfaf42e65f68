package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"both parts", User{FirstName: "Иван", LastName: "Иванов"}, "Иван Иванов"},
		{"missing last name", User{FirstName: "Иван"}, "Иван"},
		{"missing first name", User{LastName: "Иванов"}, "Иванов"},
		{"both empty", User{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}
