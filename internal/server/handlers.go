package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	apperrors "github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/llm"
	"github.com/mcncl/toonvert/internal/logger"
	"github.com/mcncl/toonvert/internal/parser"
	"github.com/mcncl/toonvert/internal/render"
)

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	JSONData string `json:"json_data"`
}

// FormatResult describes one rendered format with its token count.
type FormatResult struct {
	Formatted     string `json:"formatted"`
	Compact       string `json:"compact,omitempty"`
	Tokens        int    `json:"tokens"`
	TokensCompact int    `json:"tokens_compact,omitempty"`
}

// Savings compares TOON against one alternative format.
type Savings struct {
	SavingsPercent float64 `json:"savings_percent"`
	TokensSaved    int     `json:"tokens_saved"`
}

// ConvertResponse is the body returned by POST /api/convert.
type ConvertResponse struct {
	Success    bool                    `json:"success"`
	Estimated  bool                    `json:"estimated"`
	Formats    map[string]FormatResult `json:"formats"`
	Comparison map[string]Savings      `json:"comparison"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	root, err := parser.ParseString(req.JSONData)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.UserFriendlyError(err))
		return
	}

	jsonPretty, err := render.JSON(root)
	if err != nil {
		s.internalError(w, "render JSON", err)
		return
	}
	jsonCompact, err := render.JSONCompact(root)
	if err != nil {
		s.internalError(w, "render compact JSON", err)
		return
	}
	yamlOut, err := render.YAML(root)
	if err != nil {
		s.internalError(w, "render YAML", err)
		return
	}
	toonOut, err := s.enc.Encode(root)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepthExceeded) {
			writeError(w, http.StatusBadRequest, apperrors.UserFriendlyError(err))
			return
		}
		s.internalError(w, "encode TOON", err)
		return
	}

	jsonTokens, estimated := s.counter.Count(jsonPretty)
	jsonCompactTokens, _ := s.counter.Count(jsonCompact)
	yamlTokens, _ := s.counter.Count(yamlOut)
	toonTokens, _ := s.counter.Count(toonOut)

	writeJSON(w, http.StatusOK, ConvertResponse{
		Success:   true,
		Estimated: estimated,
		Formats: map[string]FormatResult{
			"json": {
				Formatted:     jsonPretty,
				Compact:       jsonCompact,
				Tokens:        jsonTokens,
				TokensCompact: jsonCompactTokens,
			},
			"yaml": {
				Formatted: yamlOut,
				Tokens:    yamlTokens,
			},
			"toon": {
				Formatted: toonOut,
				Tokens:    toonTokens,
			},
		},
		Comparison: map[string]Savings{
			"toon_vs_json": savings(jsonTokens, toonTokens),
			"toon_vs_yaml": savings(yamlTokens, toonTokens),
		},
	})
}

// savings computes percentage savings of TOON against a baseline count,
// rounded to one decimal place.
func savings(baseline, toon int) Savings {
	var pct float64
	if baseline > 0 {
		pct = float64(baseline-toon) / float64(baseline) * 100
	}
	return Savings{
		SavingsPercent: math.Round(pct*10) / 10,
		TokensSaved:    baseline - toon,
	}
}

// LLMTestRequest is the body of POST /api/llm-test.
type LLMTestRequest struct {
	Format string `json:"format"`
	Data   string `json:"data"`
	Prompt string `json:"prompt"`
}

// LLMTestResponse is the body returned by POST /api/llm-test.
type LLMTestResponse struct {
	Success      bool   `json:"success"`
	FormatUsed   string `json:"format_used"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	TotalTokens  int    `json:"total_tokens"`
	Response     string `json:"response"`
	Model        string `json:"model"`
}

func (s *Server) handleLLMTest(w http.ResponseWriter, r *http.Request) {
	var req LLMTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	client := s.llm
	if client == nil {
		c, err := llm.New(s.llmModel)
		if err != nil {
			writeError(w, http.StatusBadRequest, apperrors.UserFriendlyError(err))
			return
		}
		client = c
	}

	fullPrompt := llm.Prompt(req.Prompt, req.Data)
	inputTokens, _ := s.counter.Count(fullPrompt)

	output, err := client.Complete(r.Context(), req.Prompt, req.Data)
	if err != nil {
		s.internalError(w, "llm completion", err)
		return
	}
	outputTokens, _ := s.counter.Count(output)

	writeJSON(w, http.StatusOK, LLMTestResponse{
		Success:      true,
		FormatUsed:   req.Format,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		Response:     output,
		Model:        client.Model(),
	})
}

// internalError logs the cause and returns a generic server error; parse
// failures are the only errors whose details reach the client.
func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	logger.Errorw("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
