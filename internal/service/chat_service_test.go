package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"olyph-ai-be/internal/constant"
	"olyph-ai-be/pkg/faq"
	"olyph-ai-be/pkg/lexical"
	"olyph-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM replays a canned reply or error and counts calls.
type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

var testCorpus = []faq.Entry{
	{Question: "What is Olyphaunt Solutions?", Answer: "Olyphaunt Solutions is a healthcare technology company."},
	{Question: "How do I book an appointment?", Answer: "Use the appointments page in the patient portal."},
}

func newTestChatService(t *testing.T, provider llm.LLMProvider, threshold float64) IChatService {
	t.Helper()
	index, err := lexical.Fit(faq.Questions(testCorpus))
	require.NoError(t, err)
	return NewChatService(testCorpus, index, provider, threshold, time.Minute, nil)
}

func TestRespondBlankQuery(t *testing.T) {
	provider := &fakeLLM{}
	svc := newTestChatService(t, provider, 0.6)

	assert.Equal(t, constant.MsgInvalidInput, svc.Respond(context.Background(), ""))
	assert.Equal(t, constant.MsgInvalidInput, svc.Respond(context.Background(), "   \t "))
	assert.Zero(t, provider.calls)
}

func TestRespondFAQHit(t *testing.T) {
	provider := &fakeLLM{reply: "should not be used"}
	svc := newTestChatService(t, provider, 0.6)

	// Identical to a stored question: self-similarity 1.0, stored
	// answer comes back verbatim and the hosted model is never called.
	reply := svc.Respond(context.Background(), "What is Olyphaunt Solutions?")
	assert.Equal(t, testCorpus[0].Answer, reply)
	assert.Zero(t, provider.calls)
}

func TestRespondFallsBackBelowThreshold(t *testing.T) {
	provider := &fakeLLM{reply: "a generated answer"}
	svc := newTestChatService(t, provider, 0.6)

	reply := svc.Respond(context.Background(), "tell me about llamas")
	assert.Equal(t, "a generated answer", reply)
	assert.Equal(t, 1, provider.calls)
}

func TestRespondOfflineOnError(t *testing.T) {
	provider := &fakeLLM{err: errors.New("connection refused")}
	svc := newTestChatService(t, provider, 0.6)

	reply := svc.Respond(context.Background(), "tell me about llamas")
	assert.Equal(t, constant.MsgOffline, reply)
}

func TestRespondUncertainOnEmptyReply(t *testing.T) {
	provider := &fakeLLM{reply: "   "}
	svc := newTestChatService(t, provider, 0.6)

	reply := svc.Respond(context.Background(), "tell me about llamas")
	assert.Equal(t, constant.MsgUncertain, reply)
}

func TestRespondNilIndexFallsThrough(t *testing.T) {
	provider := &fakeLLM{reply: "model answer"}
	svc := NewChatService(testCorpus, nil, provider, 0.6, time.Minute, nil)

	reply := svc.Respond(context.Background(), "What is Olyphaunt Solutions?")
	assert.Equal(t, "model answer", reply)
	assert.Equal(t, 1, provider.calls)
}

func TestRespondCachesModelReplies(t *testing.T) {
	provider := &fakeLLM{reply: "cached once"}
	svc := newTestChatService(t, provider, 0.6)

	first := svc.Respond(context.Background(), "tell me about llamas")
	second := svc.Respond(context.Background(), "TELL me about llamas")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestRespondHighThresholdStillHitsExactMatch(t *testing.T) {
	provider := &fakeLLM{reply: "fallback"}

	// Exact-match queries score 1.0 (up to float error), so they hit
	// even under the strictest sensible threshold.
	svc := newTestChatService(t, provider, 0.999999)
	reply := svc.Respond(context.Background(), "how do I book an appointment?")
	assert.Equal(t, testCorpus[1].Answer, reply)
	assert.Zero(t, provider.calls)
}
