// Package chatbot answers visitor questions about the portfolio owner by
// matching the query against an ordered table of keyword rules.
//
// The table is fixed at construction and never mutated, so a Responder is
// safe for concurrent use as long as its Rand is.
package chatbot

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minQueryRunes is the shortest normalized query that is classified at all.
const minQueryRunes = 2

// Rand selects a variant index in [0, n).
type Rand interface {
	Intn(n int) int
}

// RandFunc adapts a plain function to Rand.
type RandFunc func(n int) int

// Intn implements Rand.
func (f RandFunc) Intn(n int) int { return f(n) }

// Answer is a reply together with the topic that produced it.
type Answer struct {
	Topic Topic  `json:"topic"`
	Text  string `json:"response"`
}

// Responder maps free-text queries to canned replies.
type Responder struct {
	rules    []Rule
	fallback Rule
	rnd      Rand
}

// Option configures a Responder.
type Option func(*Responder)

// WithRand replaces the default source of randomness.
func WithRand(rnd Rand) Option {
	return func(r *Responder) {
		if rnd != nil {
			r.rnd = rnd
		}
	}
}

// New creates a Responder over the built-in rule table.
func New(opts ...Option) *Responder {
	r := &Responder{
		rules:    defaultRules(),
		fallback: defaultFallback(),
		rnd:      RandFunc(rand.IntN),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize lowercases a raw query and trims whitespace and byte order
// marks from both ends.
func Normalize(query string) string {
	return strings.TrimFunc(cases.Lower(language.Und).String(query), isTrimmable)
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// Respond returns the reply text for query. It never fails and never
// returns an empty string.
func (r *Responder) Respond(query string) string {
	return r.Answer(query).Text
}

// Answer classifies query and produces its reply.
func (r *Responder) Answer(query string) Answer {
	q := Normalize(query)
	if utf8.RuneCountInString(q) < minQueryRunes {
		return Answer{Topic: TopicClarify, Text: ClarifyPrompt}
	}
	rule := r.match(q)
	return Answer{Topic: rule.Topic, Text: rule.Reply(q, r.rnd)}
}

// Classify reports which topic would answer query without producing a reply.
func (r *Responder) Classify(query string) Topic {
	q := Normalize(query)
	if utf8.RuneCountInString(q) < minQueryRunes {
		return TopicClarify
	}
	return r.match(q).Topic
}

// Priority lists the topics in the order their rules are tried, ending with
// the catch-all.
func (r *Responder) Priority() []Topic {
	topics := make([]Topic, 0, len(r.rules)+1)
	for _, rule := range r.rules {
		topics = append(topics, rule.Topic)
	}
	return append(topics, r.fallback.Topic)
}

func (r *Responder) match(q string) Rule {
	for _, rule := range r.rules {
		if rule.Match(q) {
			return rule
		}
	}
	return r.fallback
}
