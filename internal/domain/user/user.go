package user

import (
	"fmt"
)

// User is identified by a caller-chosen string ID, immutable once created.
// The password is hashed before it reaches this package; plain text never
// touches the entity.
type User struct {
	id             string
	name           string
	hashedPassword string
}

func NewUser(id, name, hashedPassword string) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(id) > 32 {
		return nil, fmt.Errorf("user ID exceeds maximum length of 32 characters")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 32 {
		return nil, fmt.Errorf("name exceeds maximum length of 32 characters")
	}
	if len(hashedPassword) == 0 {
		return nil, fmt.Errorf("hashed password is required")
	}

	return &User{
		id:             id,
		name:           name,
		hashedPassword: hashedPassword,
	}, nil
}

func ReconstructUser(id, name, hashedPassword string) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(hashedPassword) == 0 {
		return nil, fmt.Errorf("hashed password is required")
	}

	return &User{
		id:             id,
		name:           name,
		hashedPassword: hashedPassword,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) HashedPassword() string {
	return u.hashedPassword
}

func (u *User) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 32 {
		return fmt.Errorf("name exceeds maximum length of 32 characters")
	}
	u.name = name
	return nil
}

// ChangePassword replaces the stored digest. Hashing happens in the
// infrastructure layer.
func (u *User) ChangePassword(hashedPassword string) error {
	if len(hashedPassword) == 0 {
		return fmt.Errorf("hashed password cannot be empty")
	}
	u.hashedPassword = hashedPassword
	return nil
}

// String renders the registration flash form used by the UI: "name (id:xxx)".
func (u *User) String() string {
	return fmt.Sprintf("%s (id:%s)", u.name, u.id)
}
