package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

// Field name constants used to scope validation of progress payloads.
const (
	// FieldUserID targets the owner of a progress record or delta.
	FieldUserID = "user_id"

	// FieldCardID targets the card a progress record or delta refers to.
	FieldCardID = "card_id"

	// FieldViewCount targets the absolute view count of a progress record.
	FieldViewCount = "view_count"
)

// CardValidator validates cards, card files and progress payloads. Struct
// rules come from the `validate` tags on the models and are reported with
// English messages using json field names.
type CardValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewCardValidator constructs a [CardValidator] with English translations
// registered.
func NewCardValidator() (Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTranslatorConfig, err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CardValidator{validate: validate, translator: trans}, nil
}

// Validate dispatches on the dynamic type of obj. Supported types:
//   - models.Card / *models.Card
//   - []models.Card
//   - models.CardsFile / *models.CardsFile
//   - models.ProgressDelta / *models.ProgressDelta
//   - models.ProgressRecord / []models.ProgressRecord
//
// fields only applies to progress payloads.
func (v *CardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Card:
		return v.validateCard(value)
	case *models.Card:
		return v.validateCard(*value)

	case []models.Card:
		return v.validateCards(value)

	case models.CardsFile:
		return v.validateCardsFile(value)
	case *models.CardsFile:
		return v.validateCardsFile(*value)

	case models.ProgressDelta:
		return v.validateProgressDelta(value, fields...)
	case *models.ProgressDelta:
		return v.validateProgressDelta(*value, fields...)

	case models.ProgressRecord:
		return v.validateProgressRecord(value, fields...)
	case []models.ProgressRecord:
		if len(value) == 0 {
			return ErrEmptyProgress
		}
		for i, record := range value {
			if err := v.validateProgressRecord(record, fields...); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *CardValidator) validateCard(card models.Card) error {
	return v.translate(v.validate.Struct(card))
}

func (v *CardValidator) validateCards(cards []models.Card) error {
	if len(cards) == 0 {
		return ErrEmptyCards
	}
	for i, card := range cards {
		if err := v.validateCard(card); err != nil {
			return fmt.Errorf("card %d (%q): %w", i, card.Word, err)
		}
	}
	return nil
}

// validateCardsFile accepts the current file version or a file without one.
func (v *CardValidator) validateCardsFile(file models.CardsFile) error {
	if file.Version != "" && file.Version != models.CardsFileVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileVersion, file.Version)
	}
	return v.validateCards(file.Cards)
}

func (v *CardValidator) validateProgressDelta(delta models.ProgressDelta, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCardID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(delta.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldCardID:
			if delta.CardID <= 0 {
				return ErrInvalidCardID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardValidator) validateProgressRecord(record models.ProgressRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCardID, FieldViewCount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(record.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldCardID:
			if record.CardID <= 0 {
				return ErrInvalidCardID
			}
		case FieldViewCount:
			if record.ViewCount < 0 {
				return ErrInvalidViewCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// translate turns validator errors into one [ErrInvalidCard] with readable
// messages.
func (v *CardValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, e.Translate(v.translator))
	}
	return fmt.Errorf("%w: %s", ErrInvalidCard, strings.Join(msgs, ", "))
}
