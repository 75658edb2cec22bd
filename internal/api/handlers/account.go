package handlers

import (
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/validation"
)

const (
	msgIncorrectEmail    = "Incorrect email"
	msgIncorrectPassword = "Incorrect password"
)

// profileFields are the contact fields every account carries.
type profileFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (p *profileFields) sanitize() {
	sanitize.Fields(&p.Name, &p.Email, &p.Address, &p.Phone)
}

// check returns the first failing rule's message and its position in the
// form, or "" when the profile is acceptable.
func (p profileFields) check(extra ...string) (string, string) {
	if p.Name == "" || p.Email == "" || p.Address == "" || p.Phone == "" {
		return msgFieldsRequired, "1"
	}
	for _, v := range extra {
		if v == "" {
			return msgFieldsRequired, "1"
		}
	}
	if !validation.IsEmail(p.Email) {
		return msgEmailInvalid, "2"
	}
	if !validation.IsPhone(p.Phone) {
		return msgPhoneInvalid, "4"
	}
	return "", ""
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) check() string {
	if r.Email == "" || r.Password == "" {
		return msgFieldsRequired
	}
	return ""
}

type resetPasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// check validates the new password pair; requireCurrent adds the current password.
func (r resetPasswordRequest) check(requireCurrent bool) string {
	if r.NewPassword == "" || r.ConfirmPassword == "" || (requireCurrent && r.CurrentPassword == "") {
		return msgFieldsRequired
	}
	if r.NewPassword != r.ConfirmPassword {
		return msgPasswordMatch
	}
	if !validation.IsStrongPassword(r.NewPassword) {
		return msgWeakPassword
	}
	return ""
}

type tokenResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Token string `json:"token"`
}
