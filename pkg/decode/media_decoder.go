package decode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

// ErrDecode — базовая (sentinel error) ошибка декодирования сообщения.
var ErrDecode = errors.New("media decode failed")

// Имена обязательных полей в значении сообщения.
const (
	FieldTitle       = "title"
	FieldAddedYear   = "added_year"
	FieldAddedDate   = "added_date"
	FieldDescription = "description"
	FieldUserID      = "userid"
	FieldVideoID     = "videoid"
)

// RequiredFields — обязательные поля в порядке проверки.
var RequiredFields = []string{
	FieldTitle, FieldAddedYear, FieldAddedDate, FieldDescription, FieldUserID, FieldVideoID,
}

// FieldError — ошибка конкретного поля. Field пустой, если значение целиком не является объектом.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrDecode, e.Reason)
	}
	return fmt.Sprintf("%v: field %q %s", ErrDecode, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrDecode }

// DecodeMedia — разбирает значение сообщения в domain.Media.
// Значения берутся как текст без преобразований: строка как есть, число — его литерал, true/false.
func DecodeMedia(raw []byte) (domain.Media, error) {
	root, err := sonic.Get(raw)
	if err != nil {
		return domain.Media{}, &FieldError{Reason: fmt.Sprintf("invalid json: %v", err)}
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return domain.Media{}, &FieldError{Reason: "value is not a json object"}
	}

	values := make(map[string]string, len(RequiredFields))
	for _, field := range RequiredFields {
		text, err := textField(&root, field)
		if err != nil {
			return domain.Media{}, err
		}
		values[field] = text
	}

	return domain.Media{
		Title:       values[FieldTitle],
		AddedYear:   values[FieldAddedYear],
		AddedDate:   values[FieldAddedDate],
		Description: values[FieldDescription],
		UserID:      values[FieldUserID],
		VideoID:     values[FieldVideoID],
	}, nil
}

// textField достаёт поле и приводит его к тексту.
func textField(root *ast.Node, field string) (string, error) {
	node := root.Get(field)
	if node == nil || !node.Exists() {
		return "", &FieldError{Field: field, Reason: "is missing"}
	}

	switch node.TypeSafe() {
	case ast.V_STRING, ast.V_NUMBER, ast.V_TRUE, ast.V_FALSE:
		text, err := node.String()
		if err != nil {
			return "", &FieldError{Field: field, Reason: fmt.Sprintf("is malformed: %v", err)}
		}
		// Хранилище (TEXT в Postgres) не принимает битый UTF-8 и NUL.
		if !utf8.ValidString(text) || strings.ContainsRune(text, 0) {
			return "", &FieldError{Field: field, Reason: "is not valid text"}
		}
		return text, nil
	case ast.V_NULL:
		return "", &FieldError{Field: field, Reason: "is null"}
	default:
		return "", &FieldError{Field: field, Reason: "is not text-coercible"}
	}
}
