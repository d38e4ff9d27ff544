package handlers

import "github.com/go-playground/validator/v10"

// validate checks required fields on request payloads before any write.
var validate = validator.New()
