package models

import "time"

// User is the authenticated account as returned by GET /auth/me.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Role      string    `json:"role"`
}

// UserPatch is a partial update of the editable user fields. Nil fields are
// left untouched by Apply and omitted on the wire.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Apply returns a shallow merge of u and p; u itself is not modified.
func (u User) Apply(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = p.Avatar
	}
	return u
}

// Clone returns a copy of u that shares no pointers with it.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Phone != nil {
		p := *u.Phone
		c.Phone = &p
	}
	if u.Avatar != nil {
		a := *u.Avatar
		c.Avatar = &a
	}
	return &c
}

// IsEmpty reports whether p changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Avatar == nil
}

// Validate checks the fields that are set.
func (p UserPatch) Validate() error {
	if p.Name != nil && !Required(*p.Name) {
		return validationError("name is required")
	}
	if p.Email != nil && !ValidEmail(*p.Email) {
		return validationError("invalid email")
	}
	if p.Phone != nil && *p.Phone != "" && !ValidPhone(*p.Phone) {
		return validationError("invalid phone number")
	}
	return nil
}
