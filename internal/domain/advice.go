package domain

// AdviceRequest carries one free-text symptom description. Nothing in it
// is persisted; the lifetime is a single request/response cycle.
type AdviceRequest struct {
	Symptoms string

	// ObfuscationKey, when non-empty, asks for the reply to be returned
	// XOR-obfuscated and base64-encoded instead of cleartext.
	ObfuscationKey string
}

type AdviceResponse struct {
	Text string

	// Obfuscated reports whether Text is the encoded form.
	Obfuscated bool
}
