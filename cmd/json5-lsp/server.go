package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	json "github.com/goccy/go-json"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type Server struct {
	conn jsonrpc2.Conn
	log  *slog.Logger
	docs *documentStore
}

func NewServer(conn jsonrpc2.Conn, log *slog.Logger) *Server {
	return &Server{
		conn: conn,
		log:  log,
		docs: &documentStore{docs: map[protocol.DocumentURI]*document{}},
	}
}

// Handle dispatches one request or notification.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.log.Debug("request", "method", req.Method())
	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, s.initialize(), nil)
	case protocol.MethodInitialized:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		err := reply(ctx, nil, nil)
		s.conn.Close()
		return err
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		doc := s.docs.open(params.TextDocument.URI, params.TextDocument.Text)
		return s.publish(ctx, doc)
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		n := len(params.ContentChanges)
		if n == 0 {
			return nil
		}
		// full sync: the last change holds the whole text
		doc := s.docs.open(params.TextDocument.URI, params.ContentChanges[n-1].Text)
		return s.publish(ctx, doc)
	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.close(params.TextDocument.URI)
		return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	case protocol.MethodTextDocumentDidSave:
		return nil
	case protocol.MethodTextDocumentFormatting:
		var params protocol.DocumentFormattingParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		doc := s.docs.get(params.TextDocument.URI)
		if doc == nil {
			return reply(ctx, nil, nil)
		}
		edits, err := doc.format(params.Options)
		return reply(ctx, edits, err)
	case protocol.MethodTextDocumentHover:
		var params protocol.HoverParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		doc := s.docs.get(params.TextDocument.URI)
		if doc == nil {
			return reply(ctx, nil, nil)
		}
		return reply(ctx, doc.hover(params.Position), nil)
	}
	return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrMethodNotFound, req.Method()))
}

func unmarshal(req jsonrpc2.Request, dst any) error {
	if err := json.Unmarshal(req.Params(), dst); err != nil {
		return fmt.Errorf("%w: %w", jsonrpc2.ErrInvalidParams, err)
	}
	return nil
}

func (s *Server) initialize() *protocol.InitializeResult {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				Change:    protocol.TextDocumentSyncKindFull,
				OpenClose: true,
			},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}
}

func (s *Server) publish(ctx context.Context, doc *document) error {
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: doc.diagnostics(),
	})
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

func (ds *documentStore) open(uri protocol.DocumentURI, text string) *document {
	doc := parseDocument(uri, text)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) get(uri protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) close(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
