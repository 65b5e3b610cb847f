package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodyBytes bounds request bodies read by [DecodeJSON]. A full cards
// file of a few thousand entries stays well below it.
const MaxJSONBodyBytes = 8 << 20

// ErrEmptyBody is returned by [DecodeJSON] for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON writes data as a JSON response with the given status code and
// returns the number of body bytes written. If data cannot be encoded the
// client gets a 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// DecodeJSON reads the request body into a value of type T. Bodies larger
// than [MaxJSONBodyBytes] and trailing data after the JSON value are errors.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var v T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, ErrEmptyBody
		}
		return v, fmt.Errorf("decode json body: %w", err)
	}
	if dec.More() {
		return v, errors.New("decode json body: unexpected data after JSON value")
	}

	return v, nil
}
