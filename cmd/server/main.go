package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	stringsimilarity "github.com/baditaflorin/go_string_similarity"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/go_string_similarity/pkg/edit"
	"github.com/baditaflorin/go_string_similarity/pkg/phonetic"
	"github.com/baditaflorin/go_string_similarity/pkg/sequence"
	"github.com/baditaflorin/go_string_similarity/pkg/token"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultMaxInputLength = 100_000          // runes per input string
)

// ServerConfig is the YAML-loadable server configuration; flags override it.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	MaxInputLength int           `yaml:"max_input_length"`
	LogFile        string        `yaml:"log_file"`
}

// Request represents a metric computation request
type Request struct {
	Algorithm string         `json:"algorithm"`
	A         string         `json:"a"`
	B         string         `json:"b"`
	Options   RequestOptions `json:"options,omitempty"`
}

// RequestOptions maps the per-family option keys
type RequestOptions struct {
	InsertCost     *float64 `json:"insert_cost,omitempty"`
	DeleteCost     *float64 `json:"delete_cost,omitempty"`
	SubstituteCost *float64 `json:"substitute_cost,omitempty"`
	TransposeCost  *float64 `json:"transpose_cost,omitempty"`
	TokenizeScheme string   `json:"tokenize_scheme,omitempty"`
	NGramSize      int      `json:"ngram_size,omitempty"`
}

// Response represents a metric computation response
type Response struct {
	Score   float64                `json:"score"`
	Kind    string                 `json:"kind"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	logger         l.Logger
	maxInputLength int
)

func main() {
	configPath := flag.String("config", "", "YAML config file path (flags override)")
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	maxInput := flag.Int("max-input-length", DefaultMaxInputLength, "Maximum input length in runes")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg := ServerConfig{
		Port:           *port,
		ReadTimeout:    *readTimeout,
		WriteTimeout:   *writeTimeout,
		MaxRequestSize: *maxRequestSize,
		MaxInputLength: *maxInput,
		LogFile:        *logFile,
	}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		// Explicit flags win over file values.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "port":
				cfg.Port = *port
			case "read-timeout":
				cfg.ReadTimeout = *readTimeout
			case "write-timeout":
				cfg.WriteTimeout = *writeTimeout
			case "max-request-size":
				cfg.MaxRequestSize = *maxRequestSize
			case "max-input-length":
				cfg.MaxInputLength = *maxInput
			case "log-file":
				cfg.LogFile = *logFile
			}
		})
	}
	maxInputLength = cfg.MaxInputLength

	var err error
	logger, err = createLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting string similarity HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"max_input_length", cfg.MaxInputLength,
	)

	warmUp()

	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", cfg.Port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

func loadConfig(path string, cfg *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   false,
		Metrics:     true,
	})
}

// warmUp runs every algorithm once so the scratch pools are primed before
// the first request.
func warmUp() {
	ss, err := stringsimilarity.New(stringsimilarity.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize dispatcher", "error", err)
		os.Exit(1)
	}
	ctx := context.Background()
	for _, alg := range stringsimilarity.Algorithms() {
		if _, err := ss.Compute(ctx, alg, "warm", "word"); err != nil {
			logger.Warn("Warm-up computation failed", "algorithm", alg, "error", err)
		}
	}

	for _, calc := range warmUpCalculators() {
		if _, err := calc.Compute(ctx, "warm", "word"); err != nil {
			logger.Warn("Facade warm-up failed", "error", err)
		}
	}
	logger.Info("Warm-up complete", "algorithms", len(stringsimilarity.Algorithms()))
}

// warmUpCalculators builds one calculator per metric family.
func warmUpCalculators() []ports.MetricCalculator {
	var calcs []ports.MetricCalculator

	if ed, err := edit.New(edit.WithLogger(logger)); err == nil {
		calcs = append(calcs, ed)
	} else {
		logger.Warn("Failed to initialize edit distance", "error", err)
	}
	if sq, err := sequence.New(sequence.WithLogger(logger)); err == nil {
		calcs = append(calcs, sq)
	} else {
		logger.Warn("Failed to initialize sequence similarity", "error", err)
	}
	if tk, err := token.New(token.WithLogger(logger)); err == nil {
		calcs = append(calcs, tk)
	} else {
		logger.Warn("Failed to initialize token similarity", "error", err)
	}
	if ph, err := phonetic.New(phonetic.WithLogger(logger)); err == nil {
		calcs = append(calcs, ph)
	} else {
		logger.Warn("Failed to initialize phonetic similarity", "error", err)
	}
	return calcs
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "StringSimilarityServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/algorithms":
		handleAlgorithms(ctx)
	case "/compute":
		handleCompute(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAlgorithms lists the closed algorithm set
func handleAlgorithms(ctx *fasthttp.RequestCtx) {
	algorithms := stringsimilarity.Algorithms()
	names := make([]string, 0, len(algorithms))
	for _, alg := range algorithms {
		names = append(names, string(alg))
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{"algorithms": names})
}

// handleCompute evaluates one algorithm on the request's string pair
func handleCompute(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if req.Algorithm == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "An algorithm identifier is required")
		return
	}

	opts, err := buildOptions(req.Options)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}

	ss, err := stringsimilarity.New(opts...)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ss.Compute(c, stringsimilarity.Algorithm(req.Algorithm), req.A, req.B)
	if err != nil {
		ctx.SetStatusCode(statusForError(err))
		writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, Response{
		Score:   result.Score,
		Kind:    string(result.Kind),
		Details: result.Details,
	})
}

// buildOptions translates request options into dispatcher options.
func buildOptions(ro RequestOptions) ([]stringsimilarity.Option, error) {
	opts := []stringsimilarity.Option{
		stringsimilarity.WithLogger(logger),
		stringsimilarity.WithMaxInputLength(maxInputLength),
	}

	costs := stringsimilarity.DefaultCosts()
	if ro.InsertCost != nil {
		costs.Insert = *ro.InsertCost
	}
	if ro.DeleteCost != nil {
		costs.Delete = *ro.DeleteCost
	}
	if ro.SubstituteCost != nil {
		costs.Substitute = *ro.SubstituteCost
	}
	if ro.TransposeCost != nil {
		costs.Transpose = *ro.TransposeCost
	}
	opts = append(opts, stringsimilarity.WithCosts(costs))

	if ro.TokenizeScheme != "" {
		opts = append(opts, stringsimilarity.WithTokenizeScheme(stringsimilarity.TokenizeScheme(ro.TokenizeScheme)))
	}
	if ro.NGramSize != 0 {
		opts = append(opts, stringsimilarity.WithNGramSize(ro.NGramSize))
	}

	return opts, nil
}

// statusForError maps the error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, stringsimilarity.ErrInvalidAlgorithm),
		errors.Is(err, stringsimilarity.ErrInvalidConfiguration),
		errors.Is(err, stringsimilarity.ErrLengthMismatch):
		return fasthttp.StatusBadRequest
	case errors.Is(err, stringsimilarity.ErrInputTooLong):
		return fasthttp.StatusRequestEntityTooLarge
	default:
		return fasthttp.StatusInternalServerError
	}
}

// writeJSONResponse serializes and writes a JSON response
func writeJSONResponse(ctx *fasthttp.RequestCtx, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Failed to serialize response")
		return
	}
	ctx.SetBody(data)
}

// writeJSONError writes a JSON error response
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	data, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetBodyString(`{"error":"internal error"}`)
		return
	}
	ctx.SetBody(data)
}
