package models

import (
	"testing"

	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserApply_MergesOnlySetFields(t *testing.T) {
	orig := User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: "user"}

	got := orig.Apply(UserPatch{Name: common.Ptr("Ana Maria"), Phone: common.Ptr("0123456789")})

	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "0123456789", *got.Phone)
	assert.Nil(t, got.Avatar)

	// receiver is untouched
	assert.Equal(t, "Ana", orig.Name)
	assert.Nil(t, orig.Phone)
}

func TestUserApply_EmptyPatchIsIdentity(t *testing.T) {
	orig := User{ID: "u1", Name: "Ana", Avatar: common.Ptr("a.png")}
	assert.Equal(t, orig, orig.Apply(UserPatch{}))
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Avatar: common.Ptr("")}.IsEmpty())
}

func TestUserClone_DoesNotShareFields(t *testing.T) {
	u := &User{ID: "u1", Phone: common.Ptr("1"), Avatar: common.Ptr("a")}
	c := u.Clone()

	require.Equal(t, u, c)
	*c.Phone = "2"
	*c.Avatar = "b"
	assert.Equal(t, "1", *u.Phone)
	assert.Equal(t, "a", *u.Avatar)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestUserPatchValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch UserPatch
		ok    bool
	}{
		{"empty", UserPatch{}, true},
		{"good", UserPatch{Name: common.Ptr("Bo"), Email: common.Ptr("bo@x.io"), Phone: common.Ptr("012-345-6789")}, true},
		{"clear phone", UserPatch{Phone: common.Ptr("")}, true},
		{"blank name", UserPatch{Name: common.Ptr("  ")}, false},
		{"bad email", UserPatch{Email: common.Ptr("bo@")}, false},
		{"bad phone", UserPatch{Phone: common.Ptr("12")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}
