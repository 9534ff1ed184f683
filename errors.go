package stockpile

import "github.com/pkg/errors"

var ErrKeyAlreadyExists = errors.New("key already exists")
var ErrKeyDoesNotExist = errors.New("key does not exist")
var ErrInvalidValue = errors.New("invalid value")
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

var ErrStorageFailed = errors.New("storage error")
var ErrSourceInvalid = errors.New("source contents invalid")
var ErrSourceNotFound = errors.New("source file not found")
