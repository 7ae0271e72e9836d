package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique handle (used for login and identity), matched case-insensitively
	Username string `bun:",unique,notnull"`

	// Bcrypt hash, never serialized
	Password string `bun:",notnull" json:"-"`

	// DisplayName defaults to the username at registration
	DisplayName string `bun:",notnull"`

	Status   string     `bun:",nullzero,notnull,default:'Offline'"`
	LastSeen *time.Time `bun:",nullzero"`

	Bio           string `bun:",nullzero"`
	ProfilePicURL string `bun:",nullzero"`

	// Demo accounts cannot change or delete themselves
	Demo bool `bun:",notnull,default:false"`

	Joined    time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
