// Package assist proxies natural language questions to an
// OpenAI-compatible chat completion backend.
package assist
