package client

import "errors"

var errClientNotFound = errors.New("client not found")
