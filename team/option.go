package team

import "github.com/ardnew/teamport/log"

// DefaultItemNamespace prefixes held item ids.
const DefaultItemNamespace = "cobblemon"

// DefaultSuggestions is the number of alternatives attached to an
// unresolved token when the catalog is a [Suggester].
const DefaultSuggestions = 3

// Option configures a [Parser].
type Option func(*Parser)

// WithPolicy sets the policy applied to non-fatal line failures.
// A nil policy selects [Strict].
func WithPolicy(policy Policy) Option {
	return func(p *Parser) {
		if policy == nil {
			policy = Strict
		}

		p.policy = policy
	}
}

// WithLogger sets the structured logger for parse diagnostics.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithItemNamespace sets the namespace prefixed to held item ids.
// An empty namespace leaves ids unprefixed.
func WithItemNamespace(ns string) Option {
	return func(p *Parser) {
		p.namespace = ns
	}
}

// WithSuggestions sets how many alternatives are attached to unresolved
// token failures. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(p *Parser) {
		p.suggestions = max(n, 0)
	}
}

func applyDefaults(p *Parser) {
	p.policy = Strict
	p.namespace = DefaultItemNamespace
	p.suggestions = DefaultSuggestions
}

func applyOptions(p *Parser, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
}
