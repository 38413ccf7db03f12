package chatbot

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"
)

// DelayFunc simulates backend latency before a reply is produced. It carries
// no information and must never influence the response value; tests pass nil.
type DelayFunc func(ctx context.Context)

// NetworkDelay sleeps for a uniformly random duration within [min, max),
// returning early when the context is cancelled.
func NetworkDelay(min, max time.Duration) DelayFunc {
	return func(ctx context.Context) {
		d := min
		if max > min {
			d += time.Duration(rand.Int63n(int64(max - min)))
		}
		select {
		case <-ctx.Done():
		case <-time.After(d):
		}
	}
}

// Service classifies utterances into structured responses by running the
// ordered rule list. It holds no mutable state; Resolve is safe for
// concurrent use.
type Service struct {
	catalog Catalog
	orders  Orders
	delay   DelayFunc
}

func New(catalog Catalog, orders Orders, delay DelayFunc) *Service {
	return &Service{
		catalog: catalog,
		orders:  orders,
		delay:   delay,
	}
}

// Resolve maps one utterance plus its conversation context to exactly one
// response. It is total over non-empty input: collaborator failures and
// panics degrade to the fallback help-links response, never an error.
func (s *Service) Resolve(ctx context.Context, utterance string, chatCtx Context) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chatbot: recovered while resolving: %v", r)
			incIntent("fallback")
			resp = fallbackResponse()
		}
	}()

	if s.delay != nil {
		s.delay(ctx)
	}

	lower := strings.ToLower(strings.TrimSpace(utterance))
	limit, hasLimit := ExtractPriceLimit(lower)

	in := ruleInput{
		lower:    lower,
		context:  chatCtx,
		limit:    limit,
		hasLimit: hasLimit,
	}

	for _, r := range rules {
		if !r.matches(in) {
			continue
		}
		resp, err := r.respond(ctx, s, in)
		if err != nil {
			log.Printf("chatbot: rule %s failed, falling back: %v", r.name, err)
			incIntent("fallback")
			return fallbackResponse()
		}
		incIntent(r.name)
		return resp
	}

	incIntent("fallback")
	return fallbackResponse()
}
