package client

import "errors"

var (
	ErrNoClientServices = errors.New("client services are not initialized")
	ErrNoUI             = errors.New("no user interface is provided")
)
