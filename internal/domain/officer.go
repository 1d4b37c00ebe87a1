package domain

import "time"

// Officer represents a government-office staff account that can log in to the
// admin portal. The office identity (trilingual names, location) rides on the
// account because an officer session is always scoped to one office node.
type Officer struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Email        string
	Location     string
	CategoryID   int64

	NameSI string
	NameEN string
	NameTA string

	DescriptionSI string
	DescriptionEN string
	DescriptionTA string

	CreatedAt time.Time
}
