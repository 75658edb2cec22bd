// server/internal/models/common.go
package models

// ContactInfo is the public projection of an account, used by the inactive-users report.
type ContactInfo struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
