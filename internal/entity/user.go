package entity

type User struct {
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
