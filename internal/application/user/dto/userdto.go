package dto

type UserDTO struct {
	ID   string
	Name string
}
