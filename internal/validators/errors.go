package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCard             = errors.New("invalid card")
	ErrUnsupportedFileVersion  = errors.New("unsupported cards file version")
	ErrEmptyCards              = errors.New("cards list cannot be empty")
	ErrInvalidUserID           = errors.New("invalid user ID")
	ErrInvalidCardID           = errors.New("invalid card ID")
	ErrInvalidViewCount        = errors.New("view count cannot be negative")
	ErrEmptyProgress           = errors.New("progress list cannot be empty")
	ErrInvalidTranslatorConfig = errors.New("validator translations could not be registered")
)
