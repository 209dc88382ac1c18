package repository

import "errors"

// ErrAlreadyExists mirrors the DynamoDB conditional check on id for the
// memory repositories.
var ErrAlreadyExists = errors.New("item already exists")
