package user

import "oxide/internal/proto"

// ConvertUserToProtoUser maps a domain user onto its wire representation.
// The name field carries the stored name, falling back to the id for
// accounts persisted before names were written.
func ConvertUserToProtoUser(u *User) *proto.User {
	name := u.Name
	if name == "" {
		name = u.ID
	}
	return &proto.User{
		Id:   u.ID,
		Name: name,
	}
}
