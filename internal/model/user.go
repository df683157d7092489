package model

type User struct {
	ID     string
	Name   string
	Email  string
	APIKey string
}

type SignupParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}
