package service

import (
	"context"
	"strings"
	"time"

	"olyph-ai-be/internal/constant"
	"olyph-ai-be/internal/pkg/logger"
	"olyph-ai-be/pkg/faq"
	"olyph-ai-be/pkg/lexical"
	"olyph-ai-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// IChatService answers user questions: FAQ corpus first, hosted model
// fallback when lexical confidence is low.
type IChatService interface {
	// Respond never returns an error; every failure maps to one of the
	// fixed user-facing messages.
	Respond(ctx context.Context, query string) string
}

type chatService struct {
	corpus      []faq.Entry
	index       *lexical.Index // nil when fitting failed; always fall through
	llmProvider llm.LLMProvider
	threshold   float64
	replyCache  *cache.Cache
	log         logger.ILogger
}

// NewChatService wires the chat path. A nil index is accepted: the
// service then skips FAQ matching entirely and goes straight to the
// hosted model.
func NewChatService(
	corpus []faq.Entry,
	index *lexical.Index,
	llmProvider llm.LLMProvider,
	threshold float64,
	replyCacheTTL time.Duration,
	log logger.ILogger,
) IChatService {
	if log == nil {
		log = logger.Noop()
	}
	return &chatService{
		corpus:      corpus,
		index:       index,
		llmProvider: llmProvider,
		threshold:   threshold,
		replyCache:  cache.New(replyCacheTTL, 10*time.Minute),
		log:         log,
	}
}

func (s *chatService) Respond(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return constant.MsgInvalidInput
	}

	// 1) FAQ via TF-IDF similarity. Hit at or above the configured
	// threshold returns the stored answer verbatim.
	if s.index != nil {
		idx, score := s.index.BestMatch(strings.ToLower(query))
		s.log.Debug("chat", "faq similarity", map[string]interface{}{
			"score": score,
			"index": idx,
		})
		if idx >= 0 && score >= s.threshold {
			return s.corpus[idx].Answer
		}
	}

	// 2) Fallback: hosted chat completion. Model replies are cached
	// briefly per normalized query; FAQ hits and scores never are.
	cacheKey := strings.ToLower(query)
	if cached, found := s.replyCache.Get(cacheKey); found {
		return cached.(string)
	}

	reply, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.ChatPersona},
		{Role: "user", Content: query},
	}, llm.WithTemperature(0.2), llm.WithMaxTokens(256))
	if err != nil {
		s.log.Warn("chat", "hosted completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.MsgOffline
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		// Distinct from the error path: the call worked but nothing
		// extractable came back.
		s.log.Warn("chat", "hosted completion returned no text", nil)
		return constant.MsgUncertain
	}

	s.replyCache.Set(cacheKey, reply, cache.DefaultExpiration)
	return reply
}
