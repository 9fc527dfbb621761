package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartyKind tags which of the two user collections a reference points at.
// Customers and employees live in disjoint tables, so a bare UUID is not
// enough to resolve a notification party.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyEmployee PartyKind = "employee"
)

func (k PartyKind) Valid() bool {
	return k == PartyCustomer || k == PartyEmployee
}

// PartyRef is a tagged reference to a customer or an employee.
type PartyRef struct {
	Kind PartyKind `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
)

// User is the shared shape of both the customers and the employees table.
type User struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"userId"`
	FullName     string    `json:"fullName"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Kind() PartyKind {
	if u.Role == RoleCustomer {
		return PartyCustomer
	}
	return PartyEmployee
}
