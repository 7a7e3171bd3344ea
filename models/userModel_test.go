package models

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	validate := validator.New()

	user := User{FirebaseUid: "uid-1", Email: "customer@example.com"}
	assert.NoError(t, validate.Struct(user))

	// A profile update must not be able to blank required fields.
	blankedEmail := user
	blankedEmail.Email = ""
	assert.Error(t, validate.Struct(blankedEmail))

	badEmail := user
	badEmail.Email = "not-an-email"
	assert.Error(t, validate.Struct(badEmail))

	missingUid := user
	missingUid.FirebaseUid = ""
	assert.Error(t, validate.Struct(missingUid))
}
