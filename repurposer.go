package repurpose

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// Request asks for one article to be repurposed.
type Request struct {
	URL  string `json:"url" validate:"required,http_url"`
	Tone Tone   `json:"tone,omitempty"`
}

var validate = validator.New()

// Validate returns EINVALID if the request is missing a usable URL.
// The tone is not validated; unknown tones fall back to DefaultTone.
func (r *Request) Validate() error {
	if r == nil {
		return Errorf(EINVALID, "URL is required")
	}
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "URL" && fe.Tag() == "required" {
				return Errorf(EINVALID, "URL is required")
			}
		}
		return WrapError(EINVALID, err, "URL must be a valid http or https address")
	}
	return WrapError(EINVALID, err, "invalid request")
}

// Result is the outcome of a successful repurposing request.
type Result struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Tone  Tone   `json:"tone"`

	// Raw is the model's reply exactly as received.
	Raw string `json:"raw"`

	// Content is Raw normalized into the reply schema.
	Content *RepurposedContent `json:"content"`

	// Warnings lists fields that exceed their advisory length.
	Warnings []Advisory `json:"warnings,omitempty"`
}

// Repurposer runs the whole fetch, extract, complete and normalize flow
// for one request.
type Repurposer interface {
	Repurpose(ctx context.Context, req *Request) (*Result, error)
}
