package middleware

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadForm struct {
	Name   string `json:"name" binding:"required,min=2"`
	Email  string `json:"email" binding:"omitempty,email"`
	Source string `json:"source" binding:"omitempty,oneof=contact whatsapp"`
}

func TestValidationDetails(t *testing.T) {
	SetupValidator()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"A","email":"nope","source":"fax"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var form leadForm
	err := c.ShouldBindJSON(&form)
	require.Error(t, err)

	details := ValidationDetails(err)
	require.Len(t, details, 3)

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "Must be at least 2 characters", byField["name"])
	assert.Equal(t, "Invalid email format", byField["email"])
	assert.Equal(t, "Must be one of: contact whatsapp", byField["source"])
}

func TestValidationDetails_NotValidatorError(t *testing.T) {
	assert.Nil(t, ValidationDetails(errors.New("unexpected EOF")))
}
