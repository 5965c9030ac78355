package summarizer

import "context"

// Provider turns free text into a short natural-language summary.
type Provider interface {
	Summarize(ctx context.Context, content string) (string, error)
}
