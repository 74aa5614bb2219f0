// Package parser builds a models.Value tree from JSON text while preserving
// object key order, which encoding/json's map-based decoding throws away.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/models"
)

// Parse reads a single JSON value from reader into a models.Value tree.
// Numbers are kept as their source literals via json.Number; object member
// order follows the input exactly.
func Parse(reader io.Reader) (*models.Value, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything after the first value means the input is not a single JSON
	// document. Trailing whitespace is fine; trailing tokens are not.
	if dec.More() {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrMultipleJSON)
	}

	return root, nil
}

// decodeValue consumes exactly one JSON value from the token stream.
func decodeValue(dec *json.Decoder) (*models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (*models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, errors.NewParsingError(
				fmt.Sprintf("unexpected delimiter %q at offset %d", t.String(), dec.InputOffset()),
				errors.ErrInvalidJSON,
			)
		}
	case string:
		return models.Str(t), nil
	case json.Number:
		return models.Number(t), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null(), nil
	default:
		return nil, errors.NewParsingError(
			fmt.Sprintf("unexpected token %v at offset %d", tok, dec.InputOffset()),
			errors.ErrInvalidJSON,
		)
	}
}

// decodeObject consumes members until the closing brace, keeping them in
// input order. The opening brace has already been consumed.
func decodeObject(dec *json.Decoder) (*models.Value, error) {
	var members []models.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.NewParsingError(
				fmt.Sprintf("object key is not a string at offset %d", dec.InputOffset()),
				errors.ErrInvalidJSON,
			)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		members = append(members, models.Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return models.Object(members...), nil
}

// decodeArray consumes elements until the closing bracket. The opening
// bracket has already been consumed.
func decodeArray(dec *json.Decoder) (*models.Value, error) {
	var items []*models.Value
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return models.Array(items...), nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (*models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (*models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
