package news

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIModel          = "gpt-4o-mini"
	openAIRequestTimeout = 60 * time.Second
)

// digestPrompt asks for a bounded list of short-term entrepreneurship
// news as a strict JSON document. The completion layer is instructed
// to answer with JSON only; cleanResponse below still strips the
// markdown fences some models wrap around it.
const digestPrompt = "Tu es un assistant qui dresse un bulletin quotidien des actualités et événements " +
	"liés à l'entrepreneuriat au Saguenay (Québec). " +
	"Produis une liste concise (3–8 éléments max) des informations pertinentes à court terme " +
	"(rencontres, conférences, ateliers, foires, 5 à 7, appels à projets, incubateurs), " +
	"avec ce format JSON strict:\n\n" +
	"{\n" +
	"  \"items\": [\n" +
	"    {\"title\": \"...\",\"date\": \"YYYY-MM-DD or date range\",\"place\":\"...\"," +
	"     \"description\":\"1-2 phrases utiles\",\"source\":\"URL si connue ou vide\"}\n" +
	"  ]\n" +
	"}\n\n" +
	"Ne mets pas de texte hors JSON. Si tu n'as pas de sources sûres, laisse source=\"\"."

// Fetcher produces a digest. Implementations never fail: a broken
// upstream answer degrades to a synthetic "unavailable" digest so the
// read path always has something to cache and render.
type Fetcher interface {
	FetchDigest(ctx context.Context) Digest
}

// NewFetcherFromEnv selects the real completion-backed fetcher when
// OPENAI_API_KEY is configured, the deterministic demo fetcher
// otherwise.
func NewFetcherFromEnv() Fetcher {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		Log.Info("no completion credential configured, serving demo digest")
		return demoFetcher{}
	}
	config := openai.DefaultConfig(key)
	config.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}
	return &openAIFetcher{client: openai.NewClientWithConfig(config)}
}

type demoFetcher struct{}

func (demoFetcher) FetchDigest(context.Context) Digest { return DemoDigest() }

type openAIFetcher struct {
	client *openai.Client
}

func (f *openAIFetcher) FetchDigest(ctx context.Context) Digest {
	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: digestPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		Log.Error("completion request failed: ", err)
		return unavailableDigest(openAIModel)
	}
	if len(resp.Choices) == 0 {
		Log.Error("completion response carries no choice")
		return unavailableDigest(openAIModel)
	}

	text := cleanResponse(resp.Choices[0].Message.Content)
	var digest Digest
	if err := json.Unmarshal([]byte(text), &digest); err != nil || digest.Items == nil {
		Log.Error("completion response is not the expected JSON document: ", err)
		return unavailableDigest(openAIModel)
	}
	digest.Model = openAIModel
	return digest
}

// cleanResponse strips markdown code fences occasionally wrapped
// around an otherwise valid JSON answer.
func cleanResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
