// Package response holds the success/error envelope returned by every
// mutating endpoint.
package response

// Envelope reports the outcome of a write. Exactly one of Success or Error is set.
type Envelope struct {
	Success bool   `json:"success,omitempty" doc:"True when the change was applied"`
	ID      string `json:"id,omitempty" doc:"ID of the created or changed record"`
	Error   string `json:"error,omitempty" doc:"User-facing failure message"`
}

// EnvelopeOutput is the Huma output for endpoints answering with an Envelope.
type EnvelopeOutput struct {
	Status int
	Body   Envelope
}

func OK(status int, id string) *EnvelopeOutput {
	return &EnvelopeOutput{
		Status: status,
		Body:   Envelope{Success: true, ID: id},
	}
}

func Fail(status int, message string) *EnvelopeOutput {
	return &EnvelopeOutput{
		Status: status,
		Body:   Envelope{Error: message},
	}
}
