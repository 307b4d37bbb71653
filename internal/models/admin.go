package models

import "time"

// AdminAccount is a login-capable administrator stored in admin_accounts.
// The password hash may be NULL for rows created out-of-band; login treats
// that as a misconfiguration, not bad credentials.
type AdminAccount struct {
	Username     string    `db:"username" json:"username"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
