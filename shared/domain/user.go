package domain

type User struct {
	Id       UserId
	Username Username
	Fullname string
	PassHash string
}

type UserCreationData struct {
	Username Username
	Password Password
	Fullname string
}

type Credentials struct {
	Username Username
	Password Password
}
