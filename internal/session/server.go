package session

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/atinylittleshell/pathintel/internal/completion"
	"github.com/atinylittleshell/pathintel/internal/filesystem"
)

const (
	initialBufferSize = 64 * 1024
	maxMessageBytes   = 4 * 1024 * 1024
)

// Server handles one editor session. The completer, and with it the
// directory cache, lives exactly as long as the Server.
type Server struct {
	completer *completion.Completer
	logger    *zap.Logger
	version   string

	writeMu sync.Mutex
	enc     *json.Encoder

	// warmups tracks background didOpen listings.
	warmups sync.WaitGroup
}

// NewServer creates a server with a fresh completer.
func NewServer(lister filesystem.Lister, logger *zap.Logger, opts completion.Options, version string) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	completer, err := completion.NewCompleter(lister, logger, opts)
	if err != nil {
		return nil, err
	}

	return &Server{
		completer: completer,
		logger:    logger,
		version:   version,
	}, nil
}

// Completer returns the session's completer.
func (s *Server) Completer() *completion.Completer {
	return s.completer
}

// Serve reads requests from in and writes responses to out until in is
// exhausted, an exit notification arrives or ctx is done.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.enc = json.NewEncoder(out)

	// Pending warm-ups finish when input runs out and are canceled on exit.
	warmCtx, cancelWarmups := context.WithCancel(ctx)
	defer func() {
		s.warmups.Wait()
		cancelWarmups()
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, initialBufferSize), maxMessageBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("received malformed message", zap.Error(err))
			if err := s.writeError(nil, CodeParseError, "parse error"); err != nil {
				return err
			}
			continue
		}

		if req.Method == MethodExit {
			s.logger.Debug("exit requested")
			cancelWarmups()
			return nil
		}

		if err := s.handle(warmCtx, &req); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read session input: %w", err)
	}
	return nil
}

// handle dispatches a single request or notification.
// It only returns errors from writing to the output.
func (s *Server) handle(ctx context.Context, req *JSONRPCRequest) error {
	if req.JSONRPC != JSONRPCVersion {
		if req.ID == nil {
			return nil
		}
		return s.writeError(req.ID, CodeInvalidRequest, fmt.Sprintf("unsupported jsonrpc version %q", req.JSONRPC))
	}

	switch req.Method {
	case MethodInitialize:
		return s.writeResult(req.ID, InitializeResult{
			Name:            ServerName,
			Version:         s.version,
			ProtocolVersion: ProtocolVersion,
			CacheCapacity:   s.completer.Stats().Capacity,
		})

	case MethodComplete:
		if req.ID == nil {
			return nil
		}
		var params CompleteParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return s.writeError(req.ID, CodeInvalidParams, fmt.Sprintf("invalid params: %v", err))
		}
		fileURI, err := filesystem.AbsoluteURI(params.FileURI)
		if err != nil {
			return s.writeError(req.ID, CodeInvalidParams, err.Error())
		}
		params.FileURI = fileURI
		suggestions := s.completer.Complete(ctx, params)
		return s.writeResult(req.ID, CompleteResult{Suggestions: suggestions})

	case MethodStats:
		return s.writeResult(req.ID, s.completer.Stats())

	case MethodDidOpen:
		var params DidOpenParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.logger.Warn("invalid didOpen params", zap.Error(err))
			return nil
		}
		fileURI, err := filesystem.AbsoluteURI(params.FileURI)
		if err != nil {
			s.logger.Warn("invalid didOpen file", zap.Error(err))
			return nil
		}
		s.warmups.Add(1)
		go func() {
			defer s.warmups.Done()
			s.completer.WarmFile(ctx, fileURI)
		}()
		return nil

	case MethodShutdown:
		s.logger.Debug("shutdown requested", zap.Any("stats", s.completer.Stats()))
		return s.writeResult(req.ID, nil)

	default:
		s.logger.Debug("unknown method", zap.String("method", req.Method))
		if req.ID == nil {
			return nil
		}
		return s.writeError(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) writeResult(id *int, result interface{}) error {
	if id == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return s.writeError(id, CodeInvalidRequest, fmt.Sprintf("failed to encode result: %v", err))
	}

	return s.write(JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  data,
	})
}

func (s *Server) writeError(id *int, code int, message string) error {
	return s.write(JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}

func (s *Server) write(resp JSONRPCResponse) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
