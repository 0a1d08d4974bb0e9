package models

// User is the authenticated identity held by the session store.
// It is created on signup/login, replaced wholesale on profile refresh,
// and cleared on logout.
type User struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}
