package models

import (
	"bytes"
	"encoding/json"
)

// Page is one page of a list endpoint's results. Count and the
// continuation markers are only present when the server paginated the
// response; a bare-array response leaves Count nil.
type Page[T any] struct {
	Count    *int
	Next     string
	Previous string
	Results  []T
}

type pageEnvelope struct {
	Count    *int            `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// DecodeList decodes a list endpoint body that may arrive as a bare JSON
// array, a paginated envelope {count, next, previous, results}, or a
// single object. Recognizably-JSON bodies of an unexpected shape decode
// to an empty page rather than an error.
func DecodeList[T any](data []byte) (Page[T], error) {
	var page Page[T]

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return page, nil
	}

	if data[0] == '[' {
		if err := json.Unmarshal(data, &page.Results); err != nil {
			return Page[T]{}, err
		}
		return page, nil
	}

	var env pageEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Page[T]{}, err
	}

	if env.Results != nil {
		if err := json.Unmarshal(env.Results, &page.Results); err != nil {
			return Page[T]{}, err
		}
		page.Count = env.Count
		if env.Next != nil {
			page.Next = *env.Next
		}
		if env.Previous != nil {
			page.Previous = *env.Previous
		}
		return page, nil
	}

	// Some endpoints degenerate to a single object.
	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return Page[T]{}, err
	}
	page.Results = []T{single}
	return page, nil
}
