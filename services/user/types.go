package user

import "time"

type User struct {
	ID       string `json:"id" firestore:"id" bson:"_id"`
	UserName string `json:"userName" firestore:"userName" bson:"userName"`
	// Password holds the bcrypt hash, never the submitted password.
	Password       string    `json:"password" firestore:"password" bson:"password"`
	EmailAddresses []string  `json:"emailAddresses" firestore:"emailAddresses" bson:"emailAddresses"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}

func (u *User) DocumentID() string      { return u.ID }
func (u *User) SetDocumentID(id string) { u.ID = id }

type SignUp struct {
	UserName       string
	Password       string
	EmailAddresses []string
}
