package request

import (
	"encoding/json"
	"fmt"
	"io"
)

// ThemeRequest is the body of the theme preference update endpoint.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ParseThemeRequest decodes a theme update body.
func ParseThemeRequest(r io.Reader) (ThemeRequest, error) {
	var req ThemeRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return ThemeRequest{}, fmt.Errorf("invalid theme request body: %w", err)
	}
	return req, nil
}
