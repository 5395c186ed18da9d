package user

// User is the domain view of a registered account. The id doubles as the
// login username.
type User struct {
	ID   string
	Name string
}

// document is the stored shape of a user.
//
// SECURITY: the password field holds plaintext and login compares it with
// plain equality. The wire contract is defined over that equality, so any
// change here changes observable behavior.
type document struct {
	ID       string `bson:"id"`
	Name     string `bson:"name,omitempty"`
	Password string `bson:"password,omitempty"`
}
