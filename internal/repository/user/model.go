package repository

const (
	userKeyPrefix   = "user-"
	apiKeyKeyPrefix = "apikey-"
	emailKeyPrefix  = "email-"
)

type UserEntity struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	APIKey string `json:"apiKey" bson:"api_key"`
}
