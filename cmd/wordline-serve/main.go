// cmd/wordline-serve/main.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// The optional batch query server (spec §13): POST a set of
// independent queries against the shared, already-loaded lexicon and
// get back one result set per query, evaluated concurrently since §5
// guarantees each query's Oracle/Collector is strictly local state.
// Grounded in the teacher lineage's own server.go/go-app/main.go pair
// (bearer-token check, PORT/ACCESS_KEY environment convention,
// warmup-style liveness handler) but rewired from 2D board move
// generation to this engine's WordSpec queries.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/errgroup"

	wordline "github.com/kristjanb/wordline"
)

const batchSchema = `{
	"type": "object",
	"required": ["queries"],
	"properties": {
		"queries": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["rack", "spec"],
				"properties": {
					"rack": {"type": "string"},
					"spec": {"type": "string"},
					"crosswords": {"type": "array", "items": {"type": "string"}},
					"limit": {"type": "integer"}
				}
			}
		}
	}
}`

type queryRequest struct {
	Rack       string   `json:"rack"`
	Spec       string   `json:"spec"`
	Crosswords []string `json:"crosswords"`
	Limit      int      `json:"limit"`
}

type batchRequest struct {
	Queries []queryRequest `json:"queries"`
}

type resultJSON struct {
	Word  string `json:"word"`
	Line  string `json:"line"`
	Score int    `json:"score"`
}

type queryResponse struct {
	Error   string       `json:"error,omitempty"`
	Results []resultJSON `json:"results,omitempty"`
}

type batchResponse struct {
	Queries []queryResponse `json:"queries"`
}

type server struct {
	lex       *wordline.Lexicon
	schema    *jsonschema.Schema
	accessKey string
}

func main() {
	log.SetOutput(os.Stderr)
	cfg := wordline.LoadConfig()

	dict := flag.String("dict", cfg.DictionaryPath, "path to the newline-delimited word list")
	addr := flag.String("addr", cfg.Addr, "address to listen on")
	flag.Parse()

	if *dict == "" {
		log.Fatal("no dictionary path given (-dict, WORDLINE_DICTIONARY or .env)")
	}
	lex, err := wordline.LoadLexicon(*dict)
	if err != nil {
		log.Fatal(err)
	}

	schema, err := jsonschema.CompileString("batch.json", batchSchema)
	if err != nil {
		log.Fatal(err)
	}

	srv := &server{lex: lex, schema: schema, accessKey: cfg.AccessKey}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", srv.handleHealthz)
	mux.HandleFunc("/queries", srv.handleQueries)

	log.Printf("wordline-serve listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *server) handleQueries(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.accessKey != "" {
		want := "Bearer " + s.accessKey
		if r.Header.Get("Authorization") != want {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	body, err := readAndValidate(r, s.schema)
	if err != nil {
		log.Printf("[%s] rejected: %v", reqID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var batch batchRequest
	if err := json.Unmarshal(body, &batch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("[%s] evaluating %d queries", reqID, len(batch.Queries))
	resp := s.evaluateBatch(r.Context(), batch)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// evaluateBatch runs every query in the batch concurrently via
// errgroup - each gets its own Rack/WordSpec/Oracle/Collector, so
// there is no shared mutable state to guard (spec §5) beyond the
// read-only Lexicon every query shares.
func (s *server) evaluateBatch(ctx context.Context, batch batchRequest) batchResponse {
	resp := batchResponse{Queries: make([]queryResponse, len(batch.Queries))}

	g, _ := errgroup.WithContext(ctx)
	for i, qr := range batch.Queries {
		i, qr := i, qr
		g.Go(func() error {
			resp.Queries[i] = s.evaluateOne(qr)
			return nil
		})
	}
	// Every goroutine above always returns nil: a per-query failure is
	// reported in that query's own queryResponse.Error, not as a
	// batch-wide failure, so the caller gets partial results instead
	// of an all-or-nothing error.
	_ = g.Wait()
	return resp
}

func (s *server) evaluateOne(qr queryRequest) queryResponse {
	rack, err := wordline.ParseLetterPool(qr.Rack)
	if err != nil {
		return queryResponse{Error: err.Error()}
	}
	spec, err := wordline.ParseWordSpec(qr.Spec)
	if err != nil {
		return queryResponse{Error: err.Error()}
	}
	crosswords, err := wordline.ParseCrosswords(qr.Crosswords)
	if err != nil {
		return queryResponse{Error: err.Error()}
	}
	q, err := wordline.NewQuery(rack, spec, crosswords)
	if err != nil {
		return queryResponse{Error: err.Error()}
	}

	results, oracle, _ := wordline.Evaluate(s.lex, q, qr.Limit)
	out := make([]resultJSON, len(results))
	for i, res := range results {
		out[i] = resultJSON{
			Word:  strings.ToUpper(res.Placement.Word()),
			Line:  wordline.FormatResult(spec, q, oracle, res),
			Score: res.Score,
		}
	}
	return queryResponse{Results: out}
}

func readAndValidate(r *http.Request, schema *jsonschema.Schema) ([]byte, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if err := schema.Validate(v); err != nil {
		return nil, err
	}
	return raw, nil
}
